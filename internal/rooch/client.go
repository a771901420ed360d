// Package rooch fetches Oracle request objects by shelling out to the
// rooch node CLI. The CLI is the collaborator that speaks the chain's
// wire protocol; this package only runs it and parses its stdout.
package rooch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Runner executes the node CLI once and returns its stdout and stderr.
// It exists so tests can substitute the subprocess.
type Runner interface {
	Run(ctx context.Context, binary string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, binary string, args ...string) ([]byte, []byte, error) {
	var out, errOut bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	return out.Bytes(), errOut.Bytes(), err
}

// ClientConfig holds the settings for a Client.
type ClientConfig struct {
	Binary      string
	RequestType string
	Timeout     time.Duration
	Runner      Runner // nil means run the real subprocess
}

// Client invokes the node CLI to look up objects. One invocation per
// call, awaited fully; the configured timeout bounds each invocation.
type Client struct {
	binary      string
	requestType string
	timeout     time.Duration
	runner      Runner
}

func NewClient(cfg ClientConfig) *Client {
	r := cfg.Runner
	if r == nil {
		r = execRunner{}
	}
	return &Client{
		binary:      cfg.Binary,
		requestType: cfg.RequestType,
		timeout:     cfg.Timeout,
		runner:      r,
	}
}

// FetchByID looks up a single object by its ID.
func (c *Client) FetchByID(ctx context.Context, objectID string) (*Result, error) {
	res, err := c.fetch(ctx, "object", "-i", objectID)
	if err != nil {
		return nil, err
	}
	if len(res.Raw) == 0 {
		return nil, fmt.Errorf("object %s not found", objectID)
	}
	return res, nil
}

// FetchLatest queries the most recent object of the configured request
// type (descending order, limit 1).
func (c *Client) FetchLatest(ctx context.Context) (*Result, error) {
	res, err := c.fetch(ctx, "object", "-t", c.requestType, "-d", "--limit", "1")
	if err != nil {
		return nil, err
	}
	if len(res.Raw) == 0 {
		return nil, fmt.Errorf("no oracle request objects found")
	}
	return res, nil
}

func (c *Client) fetch(ctx context.Context, args ...string) (*Result, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	stdout, stderr, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return nil, fmt.Errorf("%s command failed: %w: %s", c.binary, err, msg)
		}
		return nil, fmt.Errorf("%s command failed: %w", c.binary, err)
	}

	var page ObjectPage
	if err := json.Unmarshal(stdout, &page); err != nil {
		return nil, fmt.Errorf("failed to parse %s output: %w", c.binary, err)
	}

	if len(page.Data) == 0 {
		// Empty Raw signals "no object"; callers turn it into the
		// error message appropriate for their query.
		return &Result{}, nil
	}
	return &Result{Raw: stdout, Object: page.Data[0]}, nil
}
