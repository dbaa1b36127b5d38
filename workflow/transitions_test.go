package workflow_test

import (
	"testing"

	"acelerador/models"
	"acelerador/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transitionCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	terr, ok := err.(*workflow.TransitionError)
	require.True(t, ok, "expected *workflow.TransitionError, got %T", err)
	return terr.Code
}

func TestCheckSubmitProposal(t *testing.T) {
	err := workflow.CheckSubmitProposal(workflow.RoleEquipe, workflow.PhaseWorkshop, 1500, 3, true)
	assert.NoError(t, err)

	err = workflow.CheckSubmitProposal(workflow.RoleEquipe, workflow.PhasePreWorkshop, 1500, 3, true)
	assert.Equal(t, workflow.CodeFaseNaoPermitida, transitionCode(t, err))

	err = workflow.CheckSubmitProposal(workflow.RoleGestor, workflow.PhaseWorkshop, 1500, 3, true)
	assert.Equal(t, workflow.CodeFaseNaoPermitida, transitionCode(t, err))

	err = workflow.CheckSubmitProposal(workflow.RoleEquipe, workflow.PhaseWorkshop, 1500, 3, false)
	assert.Equal(t, workflow.CodeCampoObrigatorio, transitionCode(t, err))

	err = workflow.CheckSubmitProposal(workflow.RoleEquipe, workflow.PhaseWorkshop, -1, 3, true)
	assert.Equal(t, workflow.CodeCampoObrigatorio, transitionCode(t, err))

	// Negative product count is refused like a negative value
	err = workflow.CheckSubmitProposal(workflow.RoleEquipe, workflow.PhaseWorkshop, 1500, -3, true)
	assert.Equal(t, workflow.CodeCampoObrigatorio, transitionCode(t, err))
}

func TestCheckValidateProposal(t *testing.T) {
	enviada := &models.Proposta{Status: models.PropostaEnviada}

	assert.NoError(t, workflow.CheckValidateProposal(workflow.RoleGestor, workflow.PhaseWorkshop, enviada, "validar", ""))
	assert.NoError(t, workflow.CheckValidateProposal(workflow.RoleAdministrador, workflow.PhasePreWorkshop, enviada, "rejeitar", "sem anexo legível"))

	// Rejection without a reason is refused
	err := workflow.CheckValidateProposal(workflow.RoleGestor, workflow.PhaseWorkshop, enviada, "rejeitar", "   ")
	assert.Equal(t, workflow.CodeCampoObrigatorio, transitionCode(t, err))

	// Unknown action
	err = workflow.CheckValidateProposal(workflow.RoleGestor, workflow.PhaseWorkshop, enviada, "aprovar", "")
	assert.Equal(t, workflow.CodeCampoObrigatorio, transitionCode(t, err))

	// Already processed
	validada := &models.Proposta{Status: models.PropostaValidada}
	err = workflow.CheckValidateProposal(workflow.RoleGestor, workflow.PhaseWorkshop, validada, "validar", "")
	assert.Equal(t, workflow.CodeStatusInvalido, transitionCode(t, err))

	// Validation queue closed after the workshop
	err = workflow.CheckValidateProposal(workflow.RoleGestor, workflow.PhasePosWorkshop, enviada, "validar", "")
	assert.Equal(t, workflow.CodeFaseNaoPermitida, transitionCode(t, err))
}

func TestCheckResubmitProposal(t *testing.T) {
	rejeitada := &models.Proposta{EquipeID: "equipe-1", Status: models.PropostaRejeitada, MotivoRejeicao: "valor errado"}

	assert.NoError(t, workflow.CheckResubmitProposal(workflow.RoleEquipe, "equipe-1", rejeitada))

	// Another team cannot touch it
	err := workflow.CheckResubmitProposal(workflow.RoleEquipe, "equipe-2", rejeitada)
	assert.Equal(t, workflow.CodeNaoAutorizado, transitionCode(t, err))

	// Nor a session without a resolved team
	err = workflow.CheckResubmitProposal(workflow.RoleEquipe, "", rejeitada)
	assert.Equal(t, workflow.CodeNaoAutorizado, transitionCode(t, err))

	// Only rejected proposals reopen
	enviada := &models.Proposta{EquipeID: "equipe-1", Status: models.PropostaEnviada}
	err = workflow.CheckResubmitProposal(workflow.RoleEquipe, "equipe-1", enviada)
	assert.Equal(t, workflow.CodeStatusInvalido, transitionCode(t, err))
}

func TestCheckDiscardProposal(t *testing.T) {
	rejeitada := &models.Proposta{EquipeID: "equipe-1", Status: models.PropostaRejeitada}

	assert.NoError(t, workflow.CheckDiscardProposal(workflow.RoleEquipe, "equipe-1", rejeitada))

	validada := &models.Proposta{EquipeID: "equipe-1", Status: models.PropostaValidada}
	err := workflow.CheckDiscardProposal(workflow.RoleEquipe, "equipe-1", validada)
	assert.Equal(t, workflow.CodeStatusInvalido, transitionCode(t, err))

	err = workflow.CheckDiscardProposal(workflow.RoleGestor, "equipe-1", rejeitada)
	assert.Equal(t, workflow.CodeNaoAutorizado, transitionCode(t, err))
}

func TestCheckRegisterSale(t *testing.T) {
	validada := &models.Proposta{EquipeID: "equipe-1", Status: models.PropostaValidada}

	assert.NoError(t, workflow.CheckRegisterSale(workflow.RoleEquipe, workflow.PhasePosWorkshop, "equipe-1", validada, 3, false))
	assert.NoError(t, workflow.CheckRegisterSale(workflow.RoleEquipe, workflow.PhasePreWorkshop, "equipe-1", validada, 3, false))

	// Window closed during the workshop itself
	err := workflow.CheckRegisterSale(workflow.RoleEquipe, workflow.PhaseWorkshop, "equipe-1", validada, 3, false)
	assert.Equal(t, workflow.CodeFaseNaoPermitida, transitionCode(t, err))

	// Wrong team
	err = workflow.CheckRegisterSale(workflow.RoleEquipe, workflow.PhasePosWorkshop, "equipe-2", validada, 3, false)
	assert.Equal(t, workflow.CodeNaoAutorizado, transitionCode(t, err))

	// Proposal must be validated first
	enviada := &models.Proposta{EquipeID: "equipe-1", Status: models.PropostaEnviada}
	err = workflow.CheckRegisterSale(workflow.RoleEquipe, workflow.PhasePosWorkshop, "equipe-1", enviada, 3, false)
	assert.Equal(t, workflow.CodeStatusInvalido, transitionCode(t, err))

	// Sold quantity cannot be negative
	err = workflow.CheckRegisterSale(workflow.RoleEquipe, workflow.PhasePosWorkshop, "equipe-1", validada, -1, false)
	assert.Equal(t, workflow.CodeCampoObrigatorio, transitionCode(t, err))

	// At most one active sale per proposal
	err = workflow.CheckRegisterSale(workflow.RoleEquipe, workflow.PhasePosWorkshop, "equipe-1", validada, 3, true)
	assert.Equal(t, workflow.CodeVendaDuplicada, transitionCode(t, err))
}

func TestCheckValidateSale(t *testing.T) {
	pendente := &models.Venda{StatusValidacao: models.VendaPendente}

	assert.NoError(t, workflow.CheckValidateSale(workflow.RoleGestor, workflow.PhasePosWorkshop, pendente, "validar", ""))
	assert.NoError(t, workflow.CheckValidateSale(workflow.RoleGestor, workflow.PhasePreWorkshop, pendente, "rejeitar", "valor divergente"))

	err := workflow.CheckValidateSale(workflow.RoleGestor, workflow.PhasePosWorkshop, pendente, "rejeitar", "")
	assert.Equal(t, workflow.CodeCampoObrigatorio, transitionCode(t, err))

	// Administrators do not validate sales
	err = workflow.CheckValidateSale(workflow.RoleAdministrador, workflow.PhasePosWorkshop, pendente, "validar", "")
	assert.Equal(t, workflow.CodeFaseNaoPermitida, transitionCode(t, err))

	processada := &models.Venda{StatusValidacao: models.VendaValidada}
	err = workflow.CheckValidateSale(workflow.RoleGestor, workflow.PhasePosWorkshop, processada, "validar", "")
	assert.Equal(t, workflow.CodeStatusInvalido, transitionCode(t, err))
}

func TestCheckCorrectSale(t *testing.T) {
	rejeitada := &models.Venda{StatusValidacao: models.VendaRejeitada}

	assert.NoError(t, workflow.CheckCorrectSale(workflow.RoleEquipe, "equipe-1", rejeitada, "equipe-1", 2))

	err := workflow.CheckCorrectSale(workflow.RoleEquipe, "equipe-2", rejeitada, "equipe-1", 2)
	assert.Equal(t, workflow.CodeNaoAutorizado, transitionCode(t, err))

	pendente := &models.Venda{StatusValidacao: models.VendaPendente}
	err = workflow.CheckCorrectSale(workflow.RoleEquipe, "equipe-1", pendente, "equipe-1", 2)
	assert.Equal(t, workflow.CodeStatusInvalido, transitionCode(t, err))

	// Corrections cannot introduce a negative quantity
	err = workflow.CheckCorrectSale(workflow.RoleEquipe, "equipe-1", rejeitada, "equipe-1", -2)
	assert.Equal(t, workflow.CodeCampoObrigatorio, transitionCode(t, err))
}
