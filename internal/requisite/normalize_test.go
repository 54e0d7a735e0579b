package requisite_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progviz/internal/domain"
	"progviz/internal/requisite"
)

func reqs(values ...string) []domain.Requirement {
	out := make([]domain.Requirement, len(values))
	for i, v := range values {
		out[i] = domain.Requirement(v)
	}
	return out
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name   string
		clause string
		want   []domain.Requirement
	}{
		{"one of list", "One of CH E 441, MEC E 250, or MATH 100.", reqs("CH E 441 or MEC E 250 or MATH 100")},
		{"both stays conjunction", "both MATH 100 and MATH 114", reqs("MATH 100", "MATH 114")},
		{"slash alternatives", "MATH 100/114", reqs("MATH 100 or MATH 114")},
		{"bare continuation", "MATH 100 or 114", reqs("MATH 100 or MATH 114")},
		{"bare conjunction", "MATH 100 and 102", reqs("MATH 100", "MATH 102")},
		{"one of with bare numbers", "One of MATH 100, 114, or 117", reqs("MATH 100 or MATH 114 or MATH 117")},
		{"either", "Either MATH 100 or MATH 114", reqs("MATH 100 or MATH 114")},
		{"either drops or one of filler", "Either MATH 100, or one of EE 101, 102", reqs("MATH 100 or EE 101 or EE 102")},
		{"either with long filler token filtered", "Either MATH 100, or one of MATH 101, 102", reqs("MATH 100 or MATH 102")},
		{"prose dropped", "MATH 100 or consent of the Department", reqs("MATH 100")},
		{"semicolon splits", "MATH 100; PHYS 130", reqs("MATH 100", "PHYS 130")},
		{"hyphen range dropped", "MATH 100, ENGG 100-199", reqs("MATH 100")},
		{"brackets stripped", "(MATH 100 or 114)", reqs("MATH 100 or MATH 114")},
		{"qualified or merges", "CHEM 103 or CHEM 105, PHYS 130", reqs("CHEM 103 or CHEM 105", "PHYS 130")},
		{"multiword department", "CH E 243 or 265", reqs("CH E 243 or CH E 265")},
		{"newlines collapse", "MATH 100\nand MATH 101", reqs("MATH 100", "MATH 101")},
		{
			"or both compound",
			"One of MATH 100, 114, or both MATH 101 and 102",
			reqs("MATH 100 or MATH 114 or both MATH 101 and MATH 102"),
		},
		{"empty", "", reqs()},
		{"only prose", "consent of the instructor", reqs()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := requisite.Normalize(tc.clause)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_UnresolvedBareNumber(t *testing.T) {
	for _, clause := range []string{"114", "or 114", "114 or MATH 100"} {
		_, err := requisite.Normalize(clause)
		require.Error(t, err, clause)
		assert.True(t, errors.Is(err, requisite.ErrUnresolvedDepartment), clause)

		var rerr *requisite.ResolveError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, "114", rerr.Token)
	}
}

func TestDepartment(t *testing.T) {
	assert.Equal(t, "MATH", requisite.Department("MATH 100"))
	assert.Equal(t, "MEC E", requisite.Department("CH E 441 or MEC E 250"))
	assert.Equal(t, "MATH", requisite.Department("or both MATH 101"))
	assert.Equal(t, "", requisite.Department("114"))
	assert.Equal(t, "", requisite.Department("consent required"))
}

func TestResolveDepartment(t *testing.T) {
	tokens := []string{"PHYS 130", "MATH 100", "or both", "114"}

	dept, ok := requisite.ResolveDepartment(tokens, 3)
	require.True(t, ok)
	assert.Equal(t, "MATH", dept)

	dept, ok = requisite.ResolveDepartment(tokens, 0)
	require.True(t, ok)
	assert.Equal(t, "PHYS", dept)

	_, ok = requisite.ResolveDepartment([]string{"114", "or 115"}, 1)
	assert.False(t, ok)
}
