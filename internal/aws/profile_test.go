package aws

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sharedFiles(t *testing.T) func(*config.LoadSharedConfigOptions) {
	t.Helper()
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "config")
	credPath := filepath.Join(dir, "credentials")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[default]\nregion = us-east-1\n\n[profile prod]\nregion = eu-west-1\n"), 0600))
	require.NoError(t, os.WriteFile(credPath, []byte("[ci]\naws_access_key_id = AKIDEXAMPLE\naws_secret_access_key = secret\n"), 0600))

	return func(o *config.LoadSharedConfigOptions) {
		o.ConfigFiles = []string{cfgPath}
		o.CredentialsFiles = []string{credPath}
	}
}

func TestLookupProfile(t *testing.T) {
	opt := sharedFiles(t)

	p, err := LookupProfile(context.Background(), "prod", opt)
	require.NoError(t, err)
	assert.Equal(t, &Profile{Name: "prod", Region: "eu-west-1"}, p)

	p, err = LookupProfile(context.Background(), "ci", opt)
	require.NoError(t, err)
	assert.Equal(t, "ci", p.Name)
	assert.Empty(t, p.Region)
}

func TestLookupProfile_NotFound(t *testing.T) {
	_, err := LookupProfile(context.Background(), "staging", sharedFiles(t))
	require.ErrorIs(t, err, ErrProfileNotFound)
	assert.Contains(t, err.Error(), "staging")
}
