package workflow

import (
	"strings"

	"acelerador/models"
)

// Transition error codes consumed by the presentation layer
const (
	CodeFaseNaoPermitida = "fase_nao_permitida"
	CodeNaoAutorizado    = "nao_autorizado"
	CodeStatusInvalido   = "status_invalido"
	CodeCampoObrigatorio = "campo_obrigatorio"
	CodeVendaDuplicada   = "venda_duplicada"
)

// TransitionError describes why a workflow transition was refused. It is
// never swallowed: handlers surface the message and code verbatim so the UI
// can show an actionable reason instead of a silent no-op.
type TransitionError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Phase   Phase  `json:"status_atual,omitempty"`
}

func (e *TransitionError) Error() string {
	return e.Message
}

func phaseDenied(message string, phase Phase) *TransitionError {
	return &TransitionError{Code: CodeFaseNaoPermitida, Message: message, Phase: phase}
}

// CheckSubmitProposal guards Proposta creation: team role, workshop phase,
// mandatory attachment and non-negative value and product count.
func CheckSubmitProposal(role Role, phase Phase, valorProposta float64, quantidadeProdutos int, temArquivo bool) error {
	if !CanSubmitProposal(role, phase) {
		return phaseDenied("Envio de propostas não permitido no status atual", phase)
	}
	if !temArquivo {
		return &TransitionError{Code: CodeCampoObrigatorio, Message: "Arquivo PDF da proposta é obrigatório"}
	}
	if valorProposta < 0 {
		return &TransitionError{Code: CodeCampoObrigatorio, Message: "Valor da proposta deve ser maior ou igual a zero"}
	}
	if quantidadeProdutos < 0 {
		return &TransitionError{Code: CodeCampoObrigatorio, Message: "Quantidade de produtos deve ser maior ou igual a zero"}
	}
	return nil
}

// CheckValidateProposal guards the gestor's validar/rejeitar decision on a
// Proposta. A rejection requires a non-empty motivo.
func CheckValidateProposal(role Role, phase Phase, proposta *models.Proposta, acao string, motivo string) error {
	if !CanValidateProposal(role, phase) {
		return phaseDenied("Validação de propostas não permitida no status atual", phase)
	}
	if proposta.Status != models.PropostaEnviada {
		return &TransitionError{Code: CodeStatusInvalido, Message: "Proposta já foi processada"}
	}
	switch acao {
	case "validar":
		return nil
	case "rejeitar":
		if strings.TrimSpace(motivo) == "" {
			return &TransitionError{Code: CodeCampoObrigatorio, Message: "Motivo da rejeição é obrigatório"}
		}
		return nil
	}
	return &TransitionError{Code: CodeCampoObrigatorio, Message: "Ação inválida. Use \"validar\" ou \"rejeitar\""}
}

// CheckResubmitProposal guards the correction loop: only the owning team may
// edit and resubmit, and only while the proposal is rejected.
func CheckResubmitProposal(role Role, actorEquipeID string, proposta *models.Proposta) error {
	if role != RoleEquipe || actorEquipeID == "" || proposta.EquipeID != actorEquipeID {
		return &TransitionError{Code: CodeNaoAutorizado, Message: "Apenas a equipe dona pode reenviar a proposta"}
	}
	if proposta.Status != models.PropostaRejeitada {
		return &TransitionError{Code: CodeStatusInvalido, Message: "Apenas propostas rejeitadas podem ser reenviadas"}
	}
	return nil
}

// CheckDiscardProposal guards permanent removal of a rejected proposal
func CheckDiscardProposal(role Role, actorEquipeID string, proposta *models.Proposta) error {
	if role != RoleEquipe || actorEquipeID == "" || proposta.EquipeID != actorEquipeID {
		return &TransitionError{Code: CodeNaoAutorizado, Message: "Apenas a equipe dona pode apagar a proposta"}
	}
	if proposta.Status != models.PropostaRejeitada {
		return &TransitionError{Code: CodeStatusInvalido, Message: "Apenas propostas rejeitadas podem ser apagadas"}
	}
	return nil
}

// CheckRegisterSale guards Venda creation. The proposal must be validated,
// the phase window open for the team, the sold quantity non-negative, and no
// active (non-rejected) sale may already exist for the proposal.
func CheckRegisterSale(role Role, phase Phase, actorEquipeID string, proposta *models.Proposta, quantidadeVendidos int, temVendaAtiva bool) error {
	if !CanRegisterSale(role, phase) {
		return phaseDenied("Registro de vendas não permitido no status atual", phase)
	}
	if actorEquipeID == "" || proposta.EquipeID != actorEquipeID {
		return &TransitionError{Code: CodeNaoAutorizado, Message: "Acesso negado a esta proposta"}
	}
	if proposta.Status != models.PropostaValidada {
		return &TransitionError{Code: CodeStatusInvalido, Message: "Apenas propostas validadas podem ser registradas como venda"}
	}
	if quantidadeVendidos < 0 {
		return &TransitionError{Code: CodeCampoObrigatorio, Message: "Quantidade de produtos vendidos deve ser maior ou igual a zero"}
	}
	if temVendaAtiva {
		return &TransitionError{Code: CodeVendaDuplicada, Message: "Esta proposta já possui uma venda ativa"}
	}
	return nil
}

// CheckValidateSale guards the gestor's validar/rejeitar decision on a Venda
func CheckValidateSale(role Role, phase Phase, venda *models.Venda, acao string, motivo string) error {
	if !CanValidateSale(role, phase) {
		return phaseDenied("Validação de vendas não permitida no status atual", phase)
	}
	if venda.StatusValidacao != models.VendaPendente {
		return &TransitionError{Code: CodeStatusInvalido, Message: "Esta venda já foi processada"}
	}
	switch acao {
	case "validar":
		return nil
	case "rejeitar":
		if strings.TrimSpace(motivo) == "" {
			return &TransitionError{Code: CodeCampoObrigatorio, Message: "Motivo da rejeição é obrigatório"}
		}
		return nil
	}
	return &TransitionError{Code: CodeCampoObrigatorio, Message: "Ação inválida. Use \"validar\" ou \"rejeitar\""}
}

// CheckCorrectSale guards the correction of a rejected sale back to pendente
func CheckCorrectSale(role Role, actorEquipeID string, venda *models.Venda, propostaEquipeID string, quantidadeVendidos int) error {
	if role != RoleEquipe || actorEquipeID == "" || propostaEquipeID != actorEquipeID {
		return &TransitionError{Code: CodeNaoAutorizado, Message: "Apenas a equipe dona pode corrigir a venda"}
	}
	if venda.StatusValidacao != models.VendaRejeitada {
		return &TransitionError{Code: CodeStatusInvalido, Message: "Apenas vendas rejeitadas podem ser corrigidas"}
	}
	if quantidadeVendidos < 0 {
		return &TransitionError{Code: CodeCampoObrigatorio, Message: "Quantidade de produtos vendidos deve ser maior ou igual a zero"}
	}
	return nil
}
