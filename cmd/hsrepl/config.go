package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
)

// settings is the application configuration of HS.REPL. It is populated
// from repeated command line flags
//
//     -set chainset.default-capacity=11 -set shell.panic-on-error=true
//
// and made global with gconf.Initialize.
type settings map[string]string

var _ schuko.Configuration = settings{}

// InitDefaults makes Go's log package the tracing adapter, unless another
// one has been configured.
func (s settings) InitDefaults() {
	if _, ok := s["tracing.adapter"]; !ok {
		s["tracing.adapter"] = "go"
	}
}

func (s settings) IsSet(key string) bool {
	_, found := s[key]
	return found
}

func (s settings) GetString(key string) string {
	return s[key]
}

func (s settings) GetInt(key string) int {
	n, err := strconv.Atoi(s[key])
	if err != nil {
		return 0
	}
	return n
}

func (s settings) GetBool(key string) bool {
	b, err := strconv.ParseBool(s[key])
	return err == nil && b
}

func (s settings) IsInteractive() bool {
	return true
}

// String and Set make settings a flag.Value.
func (s settings) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		keys[i] = k + "=" + s[k]
	}
	return strings.Join(keys, ",")
}

func (s settings) Set(arg string) error {
	key, value, ok := strings.Cut(arg, "=")
	if key = strings.TrimSpace(key); !ok || key == "" {
		return fmt.Errorf("setting must look like key=value, is %q", arg)
	}
	s[key] = strings.TrimSpace(value)
	return nil
}
