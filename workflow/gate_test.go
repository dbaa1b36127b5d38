package workflow_test

import (
	"testing"

	"acelerador/workflow"

	"github.com/stretchr/testify/assert"
)

var allRoles = []workflow.Role{
	workflow.RoleAdministrador,
	workflow.RoleGestor,
	workflow.RoleBanca,
	workflow.RoleEquipe,
	workflow.RoleUnknown,
}

var allPhases = []workflow.Phase{
	workflow.PhasePreWorkshop,
	workflow.PhaseWorkshop,
	workflow.PhasePosWorkshop,
	workflow.PhaseEncerrado,
	workflow.PhaseUnknown,
}

func TestCanSubmitProposal(t *testing.T) {
	for _, role := range allRoles {
		for _, phase := range allPhases {
			want := role == workflow.RoleEquipe && phase == workflow.PhaseWorkshop
			assert.Equal(t, want, workflow.CanSubmitProposal(role, phase), "role=%q phase=%q", role, phase)
		}
	}
}

func TestCanRegisterSale(t *testing.T) {
	for _, role := range allRoles {
		for _, phase := range allPhases {
			want := role == workflow.RoleEquipe &&
				(phase == workflow.PhasePreWorkshop || phase == workflow.PhasePosWorkshop)
			assert.Equal(t, want, workflow.CanRegisterSale(role, phase), "role=%q phase=%q", role, phase)
		}
	}
}

func TestCanValidateProposal(t *testing.T) {
	for _, role := range allRoles {
		for _, phase := range allPhases {
			want := (role == workflow.RoleGestor || role == workflow.RoleAdministrador) &&
				(phase == workflow.PhasePreWorkshop || phase == workflow.PhaseWorkshop)
			assert.Equal(t, want, workflow.CanValidateProposal(role, phase), "role=%q phase=%q", role, phase)
		}
	}
}

func TestCanValidateSale(t *testing.T) {
	for _, role := range allRoles {
		for _, phase := range allPhases {
			want := role == workflow.RoleGestor &&
				(phase == workflow.PhasePreWorkshop || phase == workflow.PhasePosWorkshop)
			assert.Equal(t, want, workflow.CanValidateSale(role, phase), "role=%q phase=%q", role, phase)
		}
	}
}

func TestPhaseIndependentGates(t *testing.T) {
	assert.True(t, workflow.CanChangePhase(workflow.RoleAdministrador))
	assert.False(t, workflow.CanChangePhase(workflow.RoleGestor))
	assert.False(t, workflow.CanChangePhase(workflow.RoleUnknown))

	assert.True(t, workflow.CanManageScoring(workflow.RoleBanca))
	assert.True(t, workflow.CanManageScoring(workflow.RoleAdministrador))
	assert.False(t, workflow.CanManageScoring(workflow.RoleEquipe))

	assert.True(t, workflow.CanViewDashboardGeral(workflow.RoleBanca))
	assert.False(t, workflow.CanViewDashboardGeral(workflow.RoleGestor))
}

// Everything is denied while the system is closed, no matter the role
func TestEncerradoFreezesWorkflow(t *testing.T) {
	for _, role := range allRoles {
		assert.False(t, workflow.CanSubmitProposal(role, workflow.PhaseEncerrado))
		assert.False(t, workflow.CanRegisterSale(role, workflow.PhaseEncerrado))
		assert.False(t, workflow.CanValidateProposal(role, workflow.PhaseEncerrado))
		assert.False(t, workflow.CanValidateSale(role, workflow.PhaseEncerrado))
	}
}
