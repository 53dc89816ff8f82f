package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/jacksonrayhamilton/murphy/internal/messages"
)

// DefaultFileName is used when neither --file nor MURPHY_FILE is set.
const DefaultFileName = "murphy.toml"

// EnvFile names the environment variable that overrides the definitions path.
const EnvFile = "MURPHY_FILE"

// ResolvePath picks the definitions path from flagValue, then MURPHY_FILE,
// then DefaultFileName, and expands a leading ~.
func ResolvePath(flagValue string) (string, error) {
	path := strings.TrimSpace(flagValue)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvFile))
	}
	if path == "" {
		path = DefaultFileName
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, path, err)
	}
	return expanded, nil
}
