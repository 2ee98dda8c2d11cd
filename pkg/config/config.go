// Package config resolves the management endpoint and authentication
// settings from the StorPool configuration files, optionally overridden by
// environment variables and explicit caller-supplied values.
package config

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Recognized configuration keys. The same names double as the environment
// variables consulted when environment overrides are enabled.
const (
	KeyHost         = "SP_API_HTTP_HOST"
	KeyPort         = "SP_API_HTTP_PORT"
	KeyAuthToken    = "SP_AUTH_TOKEN"
	KeyClusterName  = "SP_CLUSTER_NAME"
	KeyMultiCluster = "SP_MULTI_CLUSTER"
)

const (
	// DefaultConfPath is the primary configuration file.
	DefaultConfPath = "/etc/storpool.conf"
	// DefaultConfDir holds ordered secondary configuration fragments.
	DefaultConfDir = "/etc/storpool.conf.d"
	// FragmentSuffix is required of fragment file names.
	FragmentSuffix = ".conf"

	defaultHost = "127.0.0.1"
	defaultPort = 81
)

var envKeys = []string{KeyHost, KeyPort, KeyAuthToken, KeyClusterName, KeyMultiCluster}

// Error reports a failed configuration resolution.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Options controls a single resolution. Explicit values take priority over
// everything else; environment variables are consulted only when UseEnv is
// set and rank above the configuration files but below explicit overrides.
type Options struct {
	// Overrides maps configuration keys to explicit values.
	Overrides map[string]string
	// UseEnv enables the recognized environment variables.
	UseEnv bool
	// ConfPath overrides the primary configuration file path.
	ConfPath string
	// ConfDir overrides the fragment directory path.
	ConfDir string
}

// Config is an immutable snapshot of the resolved settings.
type Config struct {
	v            *viper.Viper
	host         string
	port         int
	authToken    string
	clusterName  string
	multiCluster bool
}

// Resolve merges, in priority order: explicit overrides, recognized
// environment variables (when enabled), the primary configuration file
// (which must exist), the fragment files of the configuration directory in
// filename sort order, and the built-in defaults.
func Resolve(opts Options) (*Config, error) {
	confPath := opts.ConfPath
	if confPath == "" {
		confPath = DefaultConfPath
	}
	confDir := opts.ConfDir
	if confDir == "" {
		confDir = DefaultConfDir
	}

	// A private viper instance per resolution; merged config layers have
	// exactly the precedence the merge order requires: Set > env > files
	// (later merges win) > defaults.
	v := viper.New()
	v.SetConfigType("properties")
	v.SetDefault(KeyHost, defaultHost)
	v.SetDefault(KeyPort, defaultPort)

	for _, frag := range fragments(confDir) {
		v.SetConfigFile(frag)
		if err := v.MergeInConfig(); err != nil {
			return nil, &Error{Msg: "could not read configuration fragment " + frag, Err: err}
		}
	}

	v.SetConfigFile(confPath)
	if err := v.MergeInConfig(); err != nil {
		return nil, &Error{Msg: "could not read the configuration file " + confPath, Err: err}
	}

	if opts.UseEnv {
		for _, key := range envKeys {
			// BindEnv uses the upper-cased key as the variable name,
			// which is exactly the recognized SP_* set.
			if err := v.BindEnv(key); err != nil {
				return nil, &Error{Msg: "could not bind environment variable " + key, Err: err}
			}
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	if !v.IsSet(KeyAuthToken) || v.GetString(KeyAuthToken) == "" {
		return nil, &Error{Msg: "missing configuration variable " + KeyAuthToken}
	}

	cfg := &Config{
		v:            v,
		host:         v.GetString(KeyHost),
		port:         v.GetInt(KeyPort),
		authToken:    v.GetString(KeyAuthToken),
		clusterName:  v.GetString(KeyClusterName),
		multiCluster: v.GetBool(KeyMultiCluster),
	}
	if cfg.port <= 0 || cfg.port > 65535 {
		return nil, &Error{Msg: fmt.Sprintf("invalid %s value %q", KeyPort, v.GetString(KeyPort))}
	}
	return cfg, nil
}

// fragments lists the usable fragment files of dir in filename sort order.
// Files not ending in .conf and hidden files are skipped; a missing or
// unreadable directory yields no fragments.
func fragments(dir string) []string {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, fi := range entries {
		name := fi.Name()
		if fi.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, FragmentSuffix) {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	sort.Strings(out)
	return out
}

// Host returns the management service host.
func (c *Config) Host() string { return c.host }

// Port returns the management service HTTP port.
func (c *Config) Port() int { return c.port }

// AuthToken returns the API authentication token.
func (c *Config) AuthToken() string { return c.authToken }

// ClusterName returns the configured cluster name, if any.
func (c *Config) ClusterName() string { return c.clusterName }

// MultiCluster reports whether multicluster mode is configured.
func (c *Config) MultiCluster() bool { return c.multiCluster }

// Get returns the raw value of any configuration key, recognized or not.
func (c *Config) Get(key string) string { return c.v.GetString(key) }

// Keys returns all resolved configuration keys.
func (c *Config) Keys() []string {
	keys := c.v.AllKeys()
	sort.Strings(keys)
	return keys
}

// MustResolve is Resolve for program initialization paths that cannot
// proceed without a configuration.
func MustResolve(opts Options) *Config {
	cfg, err := Resolve(opts)
	if err != nil {
		panic(errors.Wrap(err, "storpool configuration"))
	}
	return cfg
}
