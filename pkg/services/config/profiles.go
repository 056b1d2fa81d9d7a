package config

import (
	"context"
	"fmt"

	"github.com/revlytic/bplan/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads the consultant's engagement profiles file. Each section is
// one client engagement with its per-engagement defaults.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*domain.EngagementProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*domain.EngagementProfile, error) {
	if !cr.cfg.HasSection(name) {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	section := cr.cfg.Section(name)

	profile := &domain.EngagementProfile{
		Name:     name,
		Currency: section.Key("currency").MustString("EUR"),
	}
	profile.DefaultTaxRatePct = section.Key("default_tax_rate_pct").MustFloat64(0)

	return profile, nil
}
