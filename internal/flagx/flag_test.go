package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "https://example.com/puzzle"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-x", "1"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "drops unknown flags and positionals",
			args:    []string{"-v", "-c", "a.json", "url"},
			allowed: []string{"-c"},
			want:    []string{"-c", "a.json"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestPositional(t *testing.T) {
	valueFlags := []string{"-c", "-config"}

	require.Equal(t, []string{"https://example.com/p"},
		Positional([]string{"-c", "conf.json", "https://example.com/p"}, valueFlags))
	require.Equal(t, []string{"url"},
		Positional([]string{"--config=x.json", "url"}, valueFlags))
	require.Nil(t, Positional([]string{"-c", "conf.json"}, valueFlags))
}

func TestConfigPathFlags(t *testing.T) {
	require.Equal(t, "conf.json", ConfigPathFlags([]string{"-c", "conf.json"}))
	require.Equal(t, "other.json", ConfigPathFlags([]string{"-config=other.json"}))
	require.Equal(t, "", ConfigPathFlags([]string{"https://example.com/puzzle"}))
}
