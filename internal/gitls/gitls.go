// Package gitls lists project files through git instead of walking the tree.
package gitls

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bethropolis/eolinuxify/internal/utils"
)

var (
	// ErrNotRepository is returned when root is not inside a git work tree
	ErrNotRepository = errors.New("not a git repository")
	// ErrGitUnavailable is returned when the git executable cannot be found
	ErrGitUnavailable = errors.New("git executable not found in PATH")
)

// Client runs git commands in a work tree
type Client struct {
	binary string
	logger utils.Logger
}

// Option configures a Client
type Option func(*Client)

// WithLogger sets the client logger
func WithLogger(logger utils.Logger) Option {
	return func(c *Client) {
		c.logger = utils.OrNoop(logger)
	}
}

// WithBinary overrides the git executable
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// New creates a Client using "git" from PATH
func New(opts ...Option) *Client {
	c := &Client{binary: "git", logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether the git executable can be found
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}

// EnsureRepository fails with ErrNotRepository unless root is inside a work tree
func (c *Client) EnsureRepository(ctx context.Context, root string) error {
	stdout, stderr, err := c.run(ctx, root, "rev-parse", "--is-inside-work-tree")
	if errors.Is(err, ErrGitUnavailable) {
		return err
	}
	if err != nil || strings.TrimSpace(stdout) != "true" {
		c.logger.Debug("gitls: rev-parse in %s: stdout=%q stderr=%q err=%v", root, stdout, stderr, err)
		return fmt.Errorf("gitls: %s: %w", root, ErrNotRepository)
	}
	return nil
}

// ListFiles returns tracked and untracked-but-not-ignored files of the work
// tree at root, relative to root, in git's order. Paths are read NUL
// separated so names are never C-quoted; empty entries are dropped.
func (c *Client) ListFiles(ctx context.Context, root string) ([]string, error) {
	stdout, stderr, err := c.run(ctx, root, "ls-files", "-z", "--others", "--cached", "--exclude-standard")
	if err != nil {
		if errors.Is(err, ErrGitUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("gitls: failed to list git files in %s: %w: %s", root, err, strings.TrimSpace(stderr))
	}
	return parseList(stdout), nil
}

func parseList(out string) []string {
	var files []string
	for _, entry := range strings.Split(out, "\x00") {
		if entry == "" {
			continue
		}
		files = append(files, filepath.FromSlash(entry))
	}
	return files
}

// run executes git in dir and returns its stdout and stderr
func (c *Client) run(ctx context.Context, dir string, args ...string) (string, string, error) {
	if !c.Available() {
		return "", "", ErrGitUnavailable
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("gitls: running '%s %s' in %s", c.binary, strings.Join(args, " "), dir)
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stdout.String(), stderr.String(), fmt.Errorf("command '%s %s': %w", c.binary, strings.Join(args, " "), ctxErr)
		}
		return stdout.String(), stderr.String(), fmt.Errorf("command '%s %s': %w", c.binary, strings.Join(args, " "), err)
	}
	return stdout.String(), stderr.String(), nil
}
