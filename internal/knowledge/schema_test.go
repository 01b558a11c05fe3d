package knowledge

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/alexanderramin/faqbot/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlSource = `
- keywords: [opening hours, what time]
  answer: Nine to six.
- keywords:
    - location
  answer: Accra.
`

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"data/faqs.json", FormatJSON, false},
		{"FAQS.JSON", FormatJSON, false},
		{"faqs.yaml", FormatYAML, false},
		{"faqs.yml", FormatYAML, false},
		{"faqs.toml", "", true},
		{"faqs", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_JSON(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "kb/faqs.json",
		[]byte(`[{"keywords":["opening hours"],"answer":"Nine to six."}]`), 0o644))

	kb, err := Load(mem, "kb/faqs.json")
	require.NoError(t, err)

	assert.Equal(t, 1, kb.Len())
	assert.Equal(t, "opening hours", kb.Entry(0).PrimaryKeyword())
}

func TestLoad_YAML(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "faqs.yaml", []byte(yamlSource), 0o644))

	kb, err := Load(mem, "faqs.yaml")
	require.NoError(t, err)

	require.Equal(t, 2, kb.Len())
	assert.Equal(t, []string{"opening hours", "what time"}, kb.Entry(0).Keywords)
	assert.Equal(t, "Accra.", kb.Entry(1).Answer)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "faqs.json")

	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_Malformed(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "faqs.json", []byte(`[{"keywords": "oops"`), 0o644))

	_, err := Load(mem, "faqs.json")

	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestLoad_Invalid(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "faqs.json", []byte(`[]`), 0o644))

	_, err := Load(mem, "faqs.json")

	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestLoad_BundledKnowledgeBase(t *testing.T) {
	src, err := LoadSource(afero.NewOsFs(), "../../data/faqs.json")
	require.NoError(t, err)

	assert.Empty(t, ValidateSource(src))
	assert.Empty(t, Warnings(src))

	kb, err := Convert(src)
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleEntries(), kb.Entries())
}
