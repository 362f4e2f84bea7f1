package cli

import (
	"fmt"

	"github.com/studymoodapp/studymood/internal/locale"
)

type LocaleGetCmd struct{}

func (c *LocaleGetCmd) Run(ctx *Context) error {
	fmt.Println(ctx.App.Locale.Locale())
	return nil
}

type LocaleSetCmd struct {
	Code string `arg:"" help:"Locale code (en or id)."`
}

func (c *LocaleSetCmd) Run(ctx *Context) error {
	if !locale.Known(c.Code) {
		return fmt.Errorf("unknown locale: %s (supported: en, id)", c.Code)
	}
	if err := ctx.App.Locale.SetLocale(c.Code); err != nil {
		return err
	}
	fmt.Printf("Locale set to %s.\n", c.Code)
	return nil
}
