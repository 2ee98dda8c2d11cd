// Root of command-line argument parsing.
// This file was based off the standard cobra template, see
// https://github.com/spf13/cobra
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/storpool/storpool-go/pkg/api"
	"github.com/storpool/storpool-go/pkg/client"
	"github.com/storpool/storpool-go/pkg/config"
)

var (
	cfgFile      string
	noop         bool
	jsonData     string
	clusterName  string
	multiCluster bool
	usePost      bool
)

// rootCmd sends one raw API query and prints the JSON response.
var rootCmd = &cobra.Command{
	Use:   "spcli QUERY [ARGS...]",
	Short: "A non-interactive command-line interface to the StorPool API",
	Long: `Send a single query to the StorPool management API and print the
JSON response. All errors are reported as JSON error envelopes on the
standard error stream so the output is always machine-readable.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(args[0], args[1:])
	},
}

// Execute runs the root command; any error has already been reported in
// JSON form by the time it returns.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errExit(2, "cliParseArgs", err.Error())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (default is /etc/storpool.conf)")
	rootCmd.Flags().BoolVarP(&noop, "noop", "N", false, "no-operation mode")
	rootCmd.Flags().StringVar(&jsonData, "json", "", "JSON arguments to send to the API")
	rootCmd.Flags().StringVarP(&clusterName, "clustername", "C", "", "name of a remote cluster to send the command to")
	rootCmd.Flags().BoolVarP(&multiCluster, "multicluster", "M", false, "enable multicluster mode")
	rootCmd.Flags().BoolVarP(&usePost, "post", "P", false, "use a POST query instead of a GET one")
}

// errExit prints a JSON error envelope to stderr and exits.
func errExit(code int, name, descr string) {
	env := map[string]interface{}{
		"error": map[string]interface{}{
			"transient": false,
			"name":      name,
			"descr":     descr,
		},
	}
	b, _ := json.MarshalIndent(env, "", "  ")
	fmt.Fprintln(os.Stderr, string(b))
	os.Exit(code)
}

func runQuery(query string, callArgs []string) error {
	httpMethod := http.MethodGet
	if usePost {
		httpMethod = http.MethodPost
	}

	info, ok := api.Lookup(query, httpMethod)
	if !ok {
		errExit(2, "cliUnknownQuery",
			fmt.Sprintf("Unknown API query %s %s", httpMethod, query))
	}
	if len(callArgs) != len(info.Params) {
		errExit(2, "cliInvalidNumberOfArguments",
			fmt.Sprintf("%s takes %d argument(s) %v, %d supplied",
				query, len(info.Params), info.Params, len(callArgs)))
	}

	var payload interface{}
	if jsonData != "" {
		if !info.AcceptsJSON {
			errExit(2, "cliNoJSONRequired", "This method does not require any JSON data")
		}
		if err := json.Unmarshal([]byte(jsonData), &payload); err != nil {
			errExit(2, "cliInvalidJSON", "Could not parse the JSON data: "+err.Error())
		}
	} else if info.RequiresJSON {
		errExit(2, "cliJSONRequired", "This method requires JSON data")
	}

	if noop {
		fmt.Printf("About to invoke %s %s with args %v and JSON %v\n",
			httpMethod, info.Query, callArgs, payload)
		return nil
	}

	confPath := cfgFile
	if confPath != "" {
		expanded, err := homedir.Expand(confPath)
		if err != nil {
			errExit(2, "cliInitAPI", "Could not resolve the configuration path: "+err.Error())
		}
		confPath = expanded
	}
	cfg, err := config.Resolve(config.Options{UseEnv: true, ConfPath: confPath})
	if err != nil {
		errExit(2, "cliMissingConfigVariable", err.Error())
	}

	sp := api.FromConfig(cfg, client.WithMultiCluster(multiCluster))
	var opts []api.CallOption
	if clusterName != "" {
		opts = append(opts, api.OnCluster(clusterName))
	}

	res, err := sp.Invoke(info.Name, callArgs, payload, opts...)
	if err != nil {
		reportCallError(err)
	}

	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		errExit(2, "cliEncodeResult", "Could not encode the API response: "+err.Error())
	}
	fmt.Println(string(b))
	return nil
}

// reportCallError prints a failed call's error envelope and exits with
// the conventional status: 3 for a missing object, 2 for anything else.
func reportCallError(err error) {
	if apiErr, ok := err.(*client.ApiError); ok {
		b, merr := json.MarshalIndent(apiErr.Raw, "", "  ")
		if merr == nil {
			fmt.Fprintln(os.Stderr, string(b))
		} else {
			fmt.Fprintln(os.Stderr, apiErr.Error())
		}
		if apiErr.Name == "objectDoesNotExist" {
			os.Exit(3)
		}
		os.Exit(2)
	}
	errExit(2, "cliRequestFailed", err.Error())
}
