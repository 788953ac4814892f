package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RunFile lists which inputs and tunables to use for each day.
type RunFile struct {
	InputDir string             `yaml:"input_dir"`
	Days     map[string]DaySpec `yaml:"days"`
}

// DaySpec configures a single day.
type DaySpec struct {
	Input  string            `yaml:"input"`
	Params map[string]string `yaml:"params,omitempty"`
}

// LoadRunFile reads a YAML run file. An empty path returns the defaults.
func LoadRunFile(path string) (RunFile, error) {
	rf := defaultRunFile()
	if strings.TrimSpace(path) == "" {
		rf.Normalize()
		return rf, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return rf, err
	}
	return ParseRunFile(b, path)
}

// ParseRunFile decodes and validates run file contents. name is used in error
// messages.
func ParseRunFile(b []byte, name string) (RunFile, error) {
	rf := defaultRunFile()
	if err := yaml.Unmarshal(b, &rf); err != nil {
		return rf, fmt.Errorf("%s: %w", name, err)
	}
	rf.Normalize()
	if err := rf.Validate(); err != nil {
		return rf, fmt.Errorf("%s: %w", name, err)
	}
	return rf, nil
}

func defaultRunFile() RunFile {
	return RunFile{InputDir: "inputs"}
}

// Normalize canonicalises day keys ("14" and "day14" become "day14").
func (rf *RunFile) Normalize() {
	if strings.TrimSpace(rf.InputDir) == "" {
		rf.InputDir = "inputs"
	}
	if rf.Days == nil {
		rf.Days = map[string]DaySpec{}
		return
	}
	days := make(map[string]DaySpec, len(rf.Days))
	for name, spec := range rf.Days {
		key := strings.ToLower(strings.TrimSpace(name))
		if k, _, err := Lookup(key); err == nil {
			key = k
		}
		days[key] = spec
	}
	rf.Days = days
}

// Validate rejects days that have no registered solver.
func (rf RunFile) Validate() error {
	for name := range rf.Days {
		if _, ok := solvers[name]; !ok {
			return fmt.Errorf("%w %q", ErrUnknownDay, name)
		}
	}
	return nil
}

// Spec returns the configuration for day, filling in the default input path.
func (rf RunFile) Spec(day string) DaySpec {
	spec := rf.Days[day]
	if strings.TrimSpace(spec.Input) == "" {
		spec.Input = filepath.Join(rf.InputDir, day+".txt")
	}
	return spec
}
