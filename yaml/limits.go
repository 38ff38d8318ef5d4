// Package yaml loads extraction limits from YAML or JSON config files.
package yaml

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/toolbox"
	"gopkg.in/yaml.v3"
)

// FileConfig is the config file schema. Unset fields keep their defaults;
// pointers distinguish an explicit zero from an absent value.
type FileConfig struct {
	All struct {
		Links      *int `yaml:"links" json:"links"`
		Images     *int `yaml:"images" json:"images"`
		Headings   *int `yaml:"headings" json:"headings"`
		Paragraphs *int `yaml:"paragraphs" json:"paragraphs"`
		MetaTags   *int `yaml:"metaTags" json:"metaTags"`
	} `yaml:"all" json:"all"`

	Links struct {
		Internal *int `yaml:"internal" json:"internal"`
		External *int `yaml:"external" json:"external"`
		Anchors  *int `yaml:"anchors" json:"anchors"`
	} `yaml:"links" json:"links"`

	Text struct {
		HeadingsSummary *int `yaml:"headingsSummary" json:"headingsSummary"`
		MaxLength       *int `yaml:"maxLength" json:"maxLength"`
	} `yaml:"text" json:"text"`

	Structured struct {
		JSONLD  *int `yaml:"jsonLD" json:"jsonLD"`
		Outline *int `yaml:"outline" json:"outline"`
	} `yaml:"structured" json:"structured"`

	Contact struct {
		Emails        *int `yaml:"emails" json:"emails"`
		PhoneNumbers  *int `yaml:"phoneNumbers" json:"phoneNumbers"`
		URLs          *int `yaml:"urls" json:"urls"`
		UniqueDomains *int `yaml:"uniqueDomains" json:"uniqueDomains"`
		TopDomains    *int `yaml:"topDomains" json:"topDomains"`
	} `yaml:"contact" json:"contact"`
}

// LoadConfigFile reads YAML or JSON into FileConfig. Files without a known
// extension are tried as YAML, then JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, toolbox.Errorf(toolbox.ENOTFOUND, "config file not found: %s", path)
		}
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, toolbox.Errorf(toolbox.EINVALID, "parse yaml: %v", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, toolbox.Errorf(toolbox.EINVALID, "parse json: %v", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, toolbox.Errorf(toolbox.EINVALID, "parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Apply overlays the values set in fc onto limits.
func (fc FileConfig) Apply(limits *toolbox.Limits) {
	for _, f := range []struct {
		src *int
		dst *int
	}{
		{fc.All.Links, &limits.AllLinks},
		{fc.All.Images, &limits.AllImages},
		{fc.All.Headings, &limits.AllHeadings},
		{fc.All.Paragraphs, &limits.AllParagraphs},
		{fc.All.MetaTags, &limits.AllMetaTags},
		{fc.Links.Internal, &limits.InternalLinks},
		{fc.Links.External, &limits.ExternalLinks},
		{fc.Links.Anchors, &limits.AnchorLinks},
		{fc.Text.HeadingsSummary, &limits.HeadingsSummary},
		{fc.Text.MaxLength, &limits.MaxTextLength},
		{fc.Structured.JSONLD, &limits.JSONLD},
		{fc.Structured.Outline, &limits.Outline},
		{fc.Contact.Emails, &limits.Emails},
		{fc.Contact.PhoneNumbers, &limits.PhoneNumbers},
		{fc.Contact.URLs, &limits.URLs},
		{fc.Contact.UniqueDomains, &limits.UniqueDomains},
		{fc.Contact.TopDomains, &limits.TopDomains},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
}

// LoadLimits reads the config file at path, overlays it onto the default
// limits and validates the result.
func LoadLimits(path string) (toolbox.Limits, error) {
	limits := toolbox.DefaultLimits()
	fc, err := LoadConfigFile(path)
	if err != nil {
		return limits, err
	}
	fc.Apply(&limits)
	if err := limits.Validate(); err != nil {
		return limits, err
	}
	return limits, nil
}
