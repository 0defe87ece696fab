package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Déployer une appli sécurisée", "deployer-une-appli-securisee"},
		{"Linux   Basics!!", "linux-basics"},
		{"  --étape 1--  ", "etape-1"},
		{"", ""},
		{"C++ & Go", "c-go"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestSlugify_Truncates(t *testing.T) {
	long := strings.Repeat("a", 60)
	require.Len(t, Slugify(long), 40)
}

func TestKeyForAction_Deterministic(t *testing.T) {
	k1 := KeyForAction("Linux Basics", 1, 11, "Créer des utilisateurs")
	k2 := KeyForAction("Linux Basics", 1, 11, "Créer des utilisateurs")
	require.Equal(t, k1, k2)
	require.Equal(t, "linux-basics:skill:1:b:creer-des-utilisateurs", k1)
}

func TestKeyForAction_IndexesDisambiguate(t *testing.T) {
	a := KeyForAction("mod", 0, 0, "lire la doc")
	b := KeyForAction("mod", 0, 1, "lire la doc")
	require.NotEqual(t, a, b)
}
