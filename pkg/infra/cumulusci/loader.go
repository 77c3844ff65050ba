package cumulusci

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
	"gopkg.in/yaml.v3"
)

const ConfigFileName = "cumulusci.yml"

// DefaultAPIVersion is used when the project does not pin one
const DefaultAPIVersion = "52.0"

type cumulusConfig struct {
	Project struct {
		Name    string `yaml:"name"`
		Package struct {
			Name       string `yaml:"name"`
			APIVersion string `yaml:"api_version"`
		} `yaml:"package"`
		Git struct {
			PrefixFeature *string `yaml:"prefix_feature"`
		} `yaml:"git"`
	} `yaml:"project"`
	Orgs struct {
		Scratch map[string]struct {
			ConfigFile string `yaml:"config_file"`
			Days       int    `yaml:"days"`
		} `yaml:"scratch"`
	} `yaml:"orgs"`
}

var orgConfigNames = map[types.ScratchOrgType]string{
	types.ScratchOrgTypeDev: "dev",
	types.ScratchOrgTypeQA:  "qa",
}

// Loader reads project configuration from a checked out repository
type Loader struct{}

var _ interfaces.ProjectConfigLoader = (*Loader)(nil)

func New() *Loader {
	return &Loader{}
}

// LoadProjectConfig implements interfaces.ProjectConfigLoader. A missing
// cumulusci.yml yields the defaults.
func (x *Loader) LoadProjectConfig(ctx context.Context, repoRoot string) (*model.ProjectConfig, error) {
	cfg := &model.ProjectConfig{
		FeatureBranchPrefix: model.DefaultFeatureBranchPrefix,
		APIVersion:          DefaultAPIVersion,
		Orgs:                map[types.ScratchOrgType]model.OrgSpec{},
	}

	path := filepath.Join(repoRoot, ConfigFileName)
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.From(ctx).Warn("cumulusci.yml not found, using defaults", slog.String("path", path))
			return cfg, nil
		}
		return nil, goerr.Wrap(err, "failed to read cumulusci.yml", goerr.V("path", path))
	}

	var cc cumulusConfig
	if err := yaml.Unmarshal(raw, &cc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse cumulusci.yml", goerr.V("path", path))
	}

	if p := cc.Project.Git.PrefixFeature; p != nil {
		cfg.FeatureBranchPrefix = *p
	}
	if v := cc.Project.Package.APIVersion; v != "" {
		cfg.APIVersion = v
	}
	cfg.PackageName = cc.Project.Package.Name
	if cfg.PackageName == "" {
		cfg.PackageName = cc.Project.Name
	}

	for orgType, name := range orgConfigNames {
		if s, ok := cc.Orgs.Scratch[name]; ok {
			cfg.Orgs[orgType] = model.OrgSpec{ConfigFile: s.ConfigFile, Days: s.Days}
		}
	}

	return cfg, nil
}

// LoadScratchOrgDefinition implements interfaces.ProjectConfigLoader.
func (x *Loader) LoadScratchOrgDefinition(ctx context.Context, repoRoot, configFile string) (*model.ScratchOrgDefinition, error) {
	clean := filepath.Clean(configFile)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, goerr.Wrap(types.ErrValidationFailed, "scratch org definition must be inside the repository",
			goerr.V("config_file", configFile))
	}

	path := filepath.Join(repoRoot, clean)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read scratch org definition", goerr.V("path", path))
	}

	var def model.ScratchOrgDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidSalesforceData, "failed to parse scratch org definition",
			goerr.V("path", path),
			goerr.V("cause", err.Error()),
		)
	}
	if err := def.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid scratch org definition", goerr.V("path", path))
	}

	return &def, nil
}
