package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/node"
	"github.com/0xPolygon/rolldown/rolldown"
	"github.com/0xPolygon/rolldown/sequencerstaking"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagComponents is the flag for components.
	FlagComponents = "components"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"

	EnvVarPrefix       = "ROLLDOWN"
	ConfigType         = "toml"
	SaveConfigFileName = "rolldown_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

/*
Config represents the configuration of the rolldown node
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config
	// Node is the config of the block producer: database, block time and admin account
	Node node.Config
	// Rolldown is the config of the dispute queue and the request processor
	Rolldown rolldown.Config
	// SequencerStaking is the config of the active sets and their rotation
	SequencerStaking sequencerstaking.Config
	// Genesis is the state written on the first start
	Genesis node.Genesis
	// RPC is the config for the RPC server
	RPC jRPC.Config
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	return LoadFile(filesData, saveConfigPath)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0)
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFileFromString decodes a rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	expectedKeys, err := defaultKeys()
	if err != nil {
		return nil, err
	}
	err = loadString(cfg, configFileData, configType, true, EnvVarPrefix, &expectedKeys)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultKeys returns the keys that have a default value
func defaultKeys() ([]string, error) {
	rendered, err := NewConfigRender([]FileData{
		{Name: "default_vars", Content: DefaultVars},
		{Name: "default_values", Content: DefaultValues},
	}, EnvVarPrefix).Render()
	if err != nil {
		return nil, fmt.Errorf("error rendering default values: %w", err)
	}
	v := viper.New()
	v.SetConfigType(ConfigType)
	if err := v.ReadConfig(bytes.NewBufferString(rendered)); err != nil {
		return nil, err
	}
	return v.AllKeys(), nil
}

func SaveConfigToString(cfg Config) (string, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadFile merges the defaults with files, renders the vars and decodes the result.
// The rendered configuration is written to saveConfigPath if it is not empty.
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0)
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	merger := NewConfigRender(fileData, EnvVarPrefix)

	renderedCfg, err := merger.Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := saveConfigPath + "/" + SaveConfigFileName
		err = os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions)
		if err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	cfg, err := LoadFileFromString(renderedCfg, ConfigType)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadString(cfg *Config, configData string, configType string,
	allowEnvVars bool, envPrefix string, expectedKeys *[]string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	err := v.ReadConfig(bytes.NewBuffer([]byte(configData)))
	if err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}

	err = v.Unmarshal(&cfg, decodeHooks...)
	if err != nil {
		return err
	}

	if expectedKeys != nil {
		for _, field := range getUnexpectedFields(v.AllKeys(), *expectedKeys) {
			log.Debugf("field %s in config file doesnt have a default value", field)
		}
	}
	return nil
}

func getUnexpectedFields(keysOnFile, expectedConfigKeys []string) []string {
	wrongFields := make([]string, 0)
	for _, key := range keysOnFile {
		if !slices.Contains(expectedConfigKeys, key) {
			wrongFields = append(wrongFields, key)
		}
	}
	return wrongFields
}
