package cli

import (
	"encoding/json"
	"fmt"

	"github.com/studymoodapp/studymood/internal/storage"
)

type DebugCmd struct {
	Path *DebugPathCmd `cmd:"" help:"Show storage path."`
	Dump *DebugDumpCmd `cmd:"" help:"Dump a storage key as JSON."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Medium.Path(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Storage key (sm_user, sm_logs, sm_weekly_logs, sm_plans, sm_subjects, sm_locale)."`
}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	if err := ensureUnlocked(ctx); err != nil {
		return err
	}

	data, ok, err := ctx.Medium.Get(cmd.Key)
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}
	if !ok {
		return fmt.Errorf("key not found: %s", cmd.Key)
	}

	// sm_locale is a bare string; everything else pretty-prints as JSON.
	if cmd.Key == storage.KeyLocale {
		fmt.Println(string(data))
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		fmt.Println(string(data))
		return nil
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	fmt.Println(string(pretty))
	return nil
}
