package configs

import (
	"fmt"
	"os"
	"path"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileName   = `komand.yaml`
	defaultWorkspace = `komand_workspace`
)

var (
	errConfigPathNotExist = errors.New("config path not exist")
	errConfigPathIsFile   = errors.New("config path is file")
)

// Config stores komand playground config items.
type Config struct {
	// configuration folder path
	// default $PWD/.komand_config
	ConfigPath string `yaml:"-"`
	// workspace path for history and scratch files, default $PWD/komand_workspace
	WorkspacePath string `yaml:"WorkspacePath"`
	// default result rendering format, table/json/plain
	OutputFormat string `yaml:"OutputFormat,omitempty"`
	// commands served by the playground shell
	Commands []CommandConfig `yaml:"Commands,omitempty"`
}

func (c *Config) load() error {
	err := c.checkConfigPath()
	if err != nil {
		return err
	}

	bs, err := os.ReadFile(c.getConfigPath())
	if err != nil {
		return err
	}

	return yaml.Unmarshal(bs, c)
}

func (c *Config) getConfigPath() string {
	return path.Join(c.ConfigPath, configFileName)
}

// checkConfigPath exists and is a directory.
func (c *Config) checkConfigPath() error {
	info, err := os.Stat(c.ConfigPath)
	if err != nil {
		// not exist, return specified type to handle
		if os.IsNotExist(err) {
			return errConfigPathNotExist
		}
		return err
	}
	if !info.IsDir() {
		return errors.Wrapf(errConfigPathIsFile, "%s", c.ConfigPath)
	}

	return nil
}

func (c *Config) createDefault() error {
	err := os.MkdirAll(c.ConfigPath, os.ModePerm)
	if err != nil {
		return err
	}

	file, err := os.Create(c.getConfigPath())
	if err != nil {
		return err
	}
	defer file.Close()

	// setup default value
	c.WorkspacePath = defaultWorkspace
	c.Commands = defaultCommands()

	bs, err := yaml.Marshal(c)
	if err != nil {
		fmt.Println("failed to marshal config", err.Error())
		return err
	}

	file.Write(bs)
	return nil
}

// NewConfig loads the config from configPath, creating a default one
// when the folder does not exist yet.
func NewConfig(configPath string) (*Config, error) {
	config := &Config{
		ConfigPath: configPath,
	}
	err := config.load()
	// config path not exist, may first time to run
	if errors.Is(err, errConfigPathNotExist) {
		return config, config.createDefault()
	}

	return config, err
}
