package cli

import (
	"fmt"
	"strings"

	"github.com/sansu-app/sansu/internal/domain"
	"github.com/spf13/pflag"
)

// modeFlag is a --mode value. The zero value means "any mode".
type modeFlag domain.GameMode

var _ pflag.Value = (*modeFlag)(nil)

func (f *modeFlag) String() string { return string(*f) }
func (f *modeFlag) Type() string   { return "mode" }

func (f *modeFlag) Set(s string) error {
	m, err := domain.ParseGameMode(s)
	if err != nil {
		return err
	}
	*f = modeFlag(m)
	return nil
}

func (f modeFlag) mode() domain.GameMode { return domain.GameMode(f) }

// outputFormat selects how the home command reports the chosen game.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }
func (f *outputFormat) Type() string   { return "format" }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case formatText, formatJSON, formatYAML:
		*f = v
		return nil
	}
	return fmt.Errorf("format must be text, json or yaml, got %q", s)
}
