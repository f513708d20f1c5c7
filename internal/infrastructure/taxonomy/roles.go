package taxonomy

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vintervu/interview-server/internal/core/domain"
)

//go:embed roles.yaml
var defaultRolesYAML []byte

// RoleCatalog is the configured set of job role profiles. A role with an
// empty keyword set is rejected at load time.
type RoleCatalog struct {
	roles map[string]domain.JobRoleProfile
}

type rolesFile struct {
	Roles map[string][]string `yaml:"roles"`
}

func LoadRoles(raw []byte) (*RoleCatalog, error) {
	var file rolesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse roles yaml: %w", err)
	}
	if len(file.Roles) == 0 {
		return nil, fmt.Errorf("role table has no roles")
	}

	roles := make(map[string]domain.JobRoleProfile, len(file.Roles))
	for name, keywords := range file.Roles {
		normalized := normalize(name)
		if normalized == "" {
			return nil, fmt.Errorf("role table has an empty role name")
		}
		cleaned := make([]string, 0, len(keywords))
		seen := make(map[string]struct{}, len(keywords))
		for _, keyword := range keywords {
			kw := normalize(keyword)
			if kw == "" {
				continue
			}
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			cleaned = append(cleaned, kw)
		}
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("role %q has no required keywords", normalized)
		}
		sort.Strings(cleaned)
		roles[normalized] = domain.JobRoleProfile{Name: normalized, Keywords: cleaned}
	}

	return &RoleCatalog{roles: roles}, nil
}

// LoadRolesFile reads the role table from path, or the embedded default
// when path is empty.
func LoadRolesFile(path string) (*RoleCatalog, error) {
	if path == "" {
		return LoadRoles(defaultRolesYAML)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roles file: %w", err)
	}
	return LoadRoles(raw)
}

// Get looks a role up by case-insensitive name.
func (c *RoleCatalog) Get(name string) (domain.JobRoleProfile, bool) {
	role, ok := c.roles[normalize(name)]
	return role, ok
}

// Names returns the configured role names, sorted.
func (c *RoleCatalog) Names() []string {
	names := make([]string, 0, len(c.roles))
	for name := range c.roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
