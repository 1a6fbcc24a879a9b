package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/0xPolygon/rolldown/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

var (
	ErrCycleVars                 = fmt.Errorf("cycle vars")
	ErrMissingVars               = fmt.Errorf("missing vars")
	ErrUnsupportedConfigFileType = fmt.Errorf("unsupported config file type")

	unquotedVarRe = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	quotedVarRe   = regexp.MustCompile(`=\s*\"\{\{([^}:]+:int)\}\}\"`)
	typeMarkRe    = regexp.MustCompile(`\{\{([^}:]+:int)\}\}`)
)

// FileData is a named piece of TOML configuration
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges configuration files, later files overriding earlier ones, and
// resolves the {{var}} references they contain. A var is looked up in the environment
// first (EnvironmentPrefix_var) and then among the merged keys.
type ConfigRender struct {
	FilesData         []FileData
	LookupEnvFunc     func(key string) (string, bool)
	EnvironmentPrefix string
}

func NewConfigRender(filesData []FileData, environmentPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:         filesData,
		LookupEnvFunc:     os.LookupEnv,
		EnvironmentPrefix: environmentPrefix,
	}
}

// Render merges all the files and resolves every var
func (c *ConfigRender) Render() (string, error) {
	merged, err := c.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return c.ResolveVars(merged)
}

// Merge merges all the files without resolving any var
func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, data := range c.FilesData {
		content := quoteVars(data.Content)
		if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
			log.Errorf("error loading file %s. Err:%v. FileData: %v", data.Name, err, content)
			return "", fmt.Errorf("fail to load converted template %s to toml. Err: %w", data.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return unquoteVars(string(marshaled)), nil
}

// ResolveVars replaces the vars of the merged configuration by their values
func (c *ConfigRender) ResolveVars(merged string) (string, error) {
	tpl, values, err := c.templateAndValues(merged)
	if err != nil {
		return "", err
	}
	rendered := removeTypeMarks(c.execute(tpl, values))
	if missing := c.missingVars(tpl, values); len(missing) > 0 {
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", missing, ErrMissingVars)
	}
	// vars still present after one pass point to other vars
	final, err := c.ResolveCycle(rendered)
	if err != nil {
		return merged, err
	}
	return final, nil
}

// ResolveCycle renders the data again and again while every pass reduces the number of vars.
// A pass that resolves nothing means the remaining vars depend on each other.
func (c *ConfigRender) ResolveCycle(partiallyResolved string) (string, error) {
	data := unquoteVars(partiallyResolved)
	pending := c.GetVars(data)
	if len(pending) == 0 {
		return partiallyResolved, nil
	}
	log.Debugf("ResolveCycle: pending vars: %v", pending)
	for len(pending) > 0 {
		previous := pending
		tpl, values, err := c.templateAndValues(data)
		if err != nil {
			log.Errorf("ResolveCycle: fails reading template. Err: %v. Data:%s", err, data)
			return "", fmt.Errorf("fails to read template ResolveCycle. Err: %w", err)
		}
		data = removeTypeMarks(unquoteVars(c.execute(tpl, values)))
		pending = c.GetVars(data)
		if len(pending) == len(previous) {
			return partiallyResolved, fmt.Errorf("not resolved cycle vars: %v. Err: %w", pending, ErrCycleVars)
		}
	}
	return data, nil
}

// GetVars returns the vars of the data
func (c *ConfigRender) GetVars(data string) []string {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return []string{}
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return w.Write([]byte(""))
	})
	return vars
}

// templateAndValues expects unquoted vars: A={{B}} and not A="{{B}}"
func (c *ConfigRender) templateAndValues(data string) (*fasttemplate.Template, map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template. Err:%w", err)
	}
	k := koanf.New(".")
	quoted := quoteVars(data)
	if err := k.Load(rawbytes.Provider([]byte(quoted)), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error parsing template values. Content: %s. Err: %w", quoted, err)
	}
	return tpl, k.All(), nil
}

func (c *ConfigRender) execute(tpl *fasttemplate.Template, values map[string]interface{}) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := c.lookupEnv(tag); ok {
			return w.Write([]byte(v))
		}
		if v, ok := values[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}

func (c *ConfigRender) missingVars(tpl *fasttemplate.Template, values map[string]interface{}) []string {
	var missing []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		_, inEnv := c.lookupEnv(tag)
		_, defined := values[tag]
		if !inEnv && !defined && !slices.Contains(missing, tag) {
			missing = append(missing, tag)
		}
		return w.Write([]byte(""))
	})
	return missing
}

func (c *ConfigRender) lookupEnv(tag string) (string, bool) {
	return c.LookupEnvFunc(c.EnvironmentPrefix + "_" + strings.ReplaceAll(tag, ".", "_"))
}

// quoteVars turns A={{B}} into A="{{B:int}}" so that the data parses as TOML
func quoteVars(data string) string {
	return unquotedVarRe.ReplaceAllString(data, `= "{{${1}:int}}"`)
}

// unquoteVars reverts quoteVars
func unquoteVars(data string) string {
	return quotedVarRe.ReplaceAllStringFunc(data, func(match string) string {
		sub := quotedVarRe.FindStringSubmatch(match)
		if len(sub) > 1 {
			return "= {{" + strings.Split(sub[1], ":")[0] + "}}"
		}
		return match
	})
}

func removeTypeMarks(data string) string {
	return typeMarkRe.ReplaceAllStringFunc(data, func(match string) string {
		sub := typeMarkRe.FindStringSubmatch(match)
		if len(sub) > 1 {
			return "{{" + strings.Split(sub[1], ":")[0] + "}}"
		}
		return match
	})
}

func readFileToString(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser()); err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		tomlData, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}
