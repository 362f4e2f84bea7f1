package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/studymoodapp/studymood/internal/backup"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: record ids unique per collection
	if err := checkUniqueIDs(ctx); err != nil {
		fmt.Printf("❌ Data validation: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Data validation: OK\n")
	}

	// Check 3: no concurrent studymood process (warning only; storage
	// has exactly one supported writer)
	if err := checkSingleProcess(ps.Processes); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if _, _, err := ctx.Medium.Get("sm_user"); err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}
	return nil
}

func checkUniqueIDs(ctx *Context) error {
	seen := make(map[string]bool)
	for _, l := range ctx.App.Logs.Logs() {
		if seen[l.ID] {
			return fmt.Errorf("duplicate daily log id: %s", l.ID)
		}
		seen[l.ID] = true
	}

	seen = make(map[string]bool)
	for _, l := range ctx.App.Logs.WeeklyLogs() {
		if seen[l.ID] {
			return fmt.Errorf("duplicate weekly log id: %s", l.ID)
		}
		seen[l.ID] = true
	}

	seen = make(map[string]bool)
	for _, p := range ctx.App.Plans.Plans() {
		if seen[p.ID] {
			return fmt.Errorf("duplicate plan id: %s", p.ID)
		}
		seen[p.ID] = true
	}

	seen = make(map[string]bool)
	for _, s := range ctx.App.Subjects.Subjects() {
		if seen[s.ID] {
			return fmt.Errorf("duplicate subject id: %s", s.ID)
		}
		seen[s.ID] = true
	}

	return nil
}

// checkSingleProcess warns when another studymood process is running,
// since two writers on the same storage file can lose data. The
// process list is injected for tests.
func checkSingleProcess(listProcesses func() ([]ps.Process, error)) error {
	procs, err := listProcesses()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	exe := processName()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.EqualFold(p.Executable(), exe) {
			return fmt.Errorf("another %s process is running (pid %d); concurrent use of the same storage is not supported", exe, p.Pid())
		}
	}
	return nil
}

func processName() string {
	exe, err := os.Executable()
	if err != nil {
		return "studymood"
	}
	return filepath.Base(exe)
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.StoragePath)
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'studymood backup create'")
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
