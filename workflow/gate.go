package workflow

// The gate is the single source of truth for the role×phase permission
// matrix. Every predicate fails closed: an unknown role or phase is never
// allowed to do anything.

// CanSubmitProposal: only teams submit proposals, and only during the workshop
func CanSubmitProposal(role Role, phase Phase) bool {
	return role == RoleEquipe && phase == PhaseWorkshop
}

// CanRegisterSaleDirectly: teams may register sales against already-validated
// proposals immediately while the system is still in pre_workshop
func CanRegisterSaleDirectly(role Role, phase Phase) bool {
	return role == RoleEquipe && phase == PhasePreWorkshop
}

// CanRegisterSalePostWorkshop: the regular sale-registration window after the
// workshop ends
func CanRegisterSalePostWorkshop(role Role, phase Phase) bool {
	return role == RoleEquipe && phase == PhasePosWorkshop
}

// CanRegisterSale reports whether either sale-registration window is open
func CanRegisterSale(role Role, phase Phase) bool {
	return CanRegisterSaleDirectly(role, phase) || CanRegisterSalePostWorkshop(role, phase)
}

// CanValidateProposal: gestor (or administrador) validates proposals in
// pre_workshop and workshop. The queue is suppressed entirely from
// pos_workshop on; already-validated proposals carry forward.
func CanValidateProposal(role Role, phase Phase) bool {
	if role != RoleGestor && role != RoleAdministrador {
		return false
	}
	return phase == PhasePreWorkshop || phase == PhaseWorkshop
}

// CanValidateSale: gestor validates sales in the immediate (pre_workshop) and
// post-event (pos_workshop) windows
func CanValidateSale(role Role, phase Phase) bool {
	if role != RoleGestor {
		return false
	}
	return phase == PhasePreWorkshop || phase == PhasePosWorkshop
}

// CanChangePhase: only administrators move the system phase. Transitions are
// monotonic by convention (pre_workshop → workshop → pos_workshop →
// encerrado) but not enforced, so an administrator can recover from an
// accidental advance.
func CanChangePhase(role Role) bool {
	return role == RoleAdministrador
}

// CanManageScoring: banca configures scoring constants; administrators may
// step in
func CanManageScoring(role Role) bool {
	return role == RoleBanca || role == RoleAdministrador
}

// CanViewDashboardGeral: aggregate dashboards are for banca and administrador
func CanViewDashboardGeral(role Role) bool {
	return role == RoleBanca || role == RoleAdministrador
}
