package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

// catalogFile mirrors the on-disk layout:
//
//	service_types = ["Consultation", "Therapy"]
//
//	[[offices]]
//	id = "1"
//	name = "Guidance Office"
type catalogFile struct {
	Offices      []appointment.Office `toml:"offices"`
	ServiceTypes []string             `toml:"service_types"`
}

// LoadCatalog decodes path, or returns the built-in catalog when path is
// empty. Sections missing from the file keep their defaults.
func LoadCatalog(path string) (appointment.Catalog, error) {
	def := appointment.DefaultCatalog()
	if path == "" {
		return def, nil
	}

	var f catalogFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return appointment.Catalog{}, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	return buildCatalog(f, def)
}

func DecodeCatalog(data string) (appointment.Catalog, error) {
	var f catalogFile
	if _, err := toml.Decode(data, &f); err != nil {
		return appointment.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return buildCatalog(f, appointment.DefaultCatalog())
}

func buildCatalog(f catalogFile, def appointment.Catalog) (appointment.Catalog, error) {
	out := def

	if len(f.Offices) > 0 {
		seen := make(map[string]bool, len(f.Offices))
		for _, o := range f.Offices {
			if o.ID == "" || o.Name == "" {
				return appointment.Catalog{}, fmt.Errorf("catalog office needs id and name: %+v", o)
			}
			if seen[o.ID] {
				return appointment.Catalog{}, fmt.Errorf("duplicate catalog office id %q", o.ID)
			}
			seen[o.ID] = true
		}
		out.Offices = f.Offices
	}

	if len(f.ServiceTypes) > 0 {
		out.ServiceTypes = make([]appointment.ServiceType, 0, len(f.ServiceTypes))
		for _, s := range f.ServiceTypes {
			if s == "" {
				return appointment.Catalog{}, fmt.Errorf("empty catalog service type")
			}
			out.ServiceTypes = append(out.ServiceTypes, appointment.ServiceType(s))
		}
	}

	return out, nil
}
