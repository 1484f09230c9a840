package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDotEnv_LookupOrderAndPrecedence(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_ENV", "staging")
	t.Cleanup(func() { os.Unsetenv("DOTENV_ORDER_CHECK") })

	writeEnvFile(t, ".env", "DOTENV_ORDER_CHECK=base\n")
	writeEnvFile(t, ".env.staging", "DOTENV_ORDER_CHECK=staging\n")
	writeEnvFile(t, ".env.local", "DOTENV_ORDER_CHECK=local\n")

	loaded := LoadDotEnv()

	assert.Equal(t, []string{".env.local", ".env.staging", ".env"}, loaded)
	// godotenv keeps the first value it sets, so the most specific file wins
	assert.Equal(t, "local", os.Getenv("DOTENV_ORDER_CHECK"))
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	chdirTemp(t)

	assert.Empty(t, LoadDotEnv())
}

func TestLoadDotEnv_DeploymentEnvWins(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DOTENV_DEPLOY_CHECK", "from-deployment")

	writeEnvFile(t, ".env", "DOTENV_DEPLOY_CHECK=from-file\n")

	LoadDotEnv()

	assert.Equal(t, "from-deployment", os.Getenv("DOTENV_DEPLOY_CHECK"))
}

// chdirTemp mirrors t.Chdir(t.TempDir()), which needs Go 1.24+.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { assert.NoError(t, os.Chdir(wd)) })
}

func writeEnvFile(t *testing.T, name, content string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(name, []byte(content), 0o600))
}
