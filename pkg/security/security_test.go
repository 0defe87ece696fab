package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"https://lechemin.tech", "http://localhost:5173"}

	require.True(t, OriginAllowed("", allowed), "non-browser callers have no origin")
	require.True(t, OriginAllowed("https://lechemin.tech", allowed))
	require.True(t, OriginAllowed("http://localhost:5173", allowed))
	require.False(t, OriginAllowed("https://evil.example", allowed))
	require.False(t, OriginAllowed("https://lechemin.tech.evil.example", allowed))
}

func TestOriginAllowed_NoAllowListConfigured(t *testing.T) {
	require.True(t, OriginAllowed("https://anything.example", nil))
	require.True(t, OriginAllowed("http://localhost:3000", nil))
	require.False(t, OriginAllowed("chrome-extension://abc", nil))
	require.True(t, OriginAllowed("", nil))
}
