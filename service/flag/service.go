package flag

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/eni-doctor/model"
	"github.com/spf13/pflag"
)

type service struct {
	flags model.Flags
}

func NewService() *service {
	return &service{}
}

func (s *service) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&s.flags.Delete, "delete", "d", false, `Delete "available" ENIs`)
	fs.StringVarP(&s.flags.Profile, "profile", "p", "", "AWS profile to use, overriding the standard AWS profile resolution")
	fs.StringVarP(&s.flags.Region, "region", "r", "", "AWS region to target, overriding the standard AWS region resolution")
	fs.BoolVar(&s.flags.Chart, "chart", false, "Also draw a bar chart of ENIs per status")
	fs.BoolVar(&s.flags.NoBanner, "no-banner", false, "Never print the banner or the spinner")
}

// GetParsedFlags returns the values bound by AddFlags once the flag set has
// been parsed.
func (s *service) GetParsedFlags() (model.Flags, error) {
	flags := s.flags
	flags.Region = strings.TrimSpace(flags.Region)
	flags.Profile = strings.TrimSpace(flags.Profile)

	if strings.ContainsAny(flags.Region, " \t") {
		return model.Flags{}, fmt.Errorf("invalid region %q", flags.Region)
	}

	return flags, nil
}
