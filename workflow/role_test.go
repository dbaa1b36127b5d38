package workflow_test

import (
	"testing"

	"acelerador/workflow"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in   string
		want workflow.Role
	}{
		{"administrador", workflow.RoleAdministrador},
		{"admin", workflow.RoleAdministrador},
		{"geral", workflow.RoleAdministrador},
		{"ADMIN", workflow.RoleAdministrador},
		{"  gestor ", workflow.RoleGestor},
		{"banca", workflow.RoleBanca},
		{"equipe", workflow.RoleEquipe},
		{"", workflow.RoleUnknown},
		{"diretor", workflow.RoleUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, workflow.NormalizeRole(tc.in), "input %q", tc.in)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, workflow.RoleEquipe.Valid())
	assert.False(t, workflow.RoleUnknown.Valid())
	assert.False(t, workflow.Role("diretor").Valid())
}

func TestParsePhase(t *testing.T) {
	assert.Equal(t, workflow.PhaseWorkshop, workflow.ParsePhase("workshop"))
	assert.Equal(t, workflow.PhasePreWorkshop, workflow.ParsePhase("pre_workshop"))
	assert.Equal(t, workflow.PhasePosWorkshop, workflow.ParsePhase("pos_workshop"))
	assert.Equal(t, workflow.PhaseEncerrado, workflow.ParsePhase("encerrado"))
	assert.Equal(t, workflow.PhaseUnknown, workflow.ParsePhase("intervalo"))
	assert.Equal(t, workflow.PhaseUnknown, workflow.ParsePhase(""))
}
