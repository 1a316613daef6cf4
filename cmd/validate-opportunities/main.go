package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Gunvolt24/oppify/pkg/validate"
)

// CLI-приложение для проверки выгрузок скраперов до отправки в Kafka.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	policyStr := flag.String("policy", "mapping", "trust policy: mapping|allowlist")
	allowList := flag.String("allow", "", "comma-separated sources for allowlist policy (default: built-in list)")
	flag.Parse()

	cfg := validate.TrustConfig{Kind: validate.PolicyKind(*policyStr)}
	if *allowList != "" {
		for _, s := range strings.Split(*allowList, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.AllowList = append(cfg.AllowList, s)
			}
		}
	}
	policy, err := validate.NewPolicy(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "policy: %v\n", err)
		os.Exit(2)
	}
	validator := validate.NewOpportunityValidator(policy)

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(context.Background(), validator, path, format, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
