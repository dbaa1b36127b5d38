package response

import (
	"errors"
	"net/http"

	"acelerador/metrics"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Success sends a standardized success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// TransitionDenied translates a workflow precondition failure into the wire
// shape the dashboards expect: the reason, a machine-readable code and the
// phase that caused the refusal. Authorization failures map to 403,
// everything else to 400.
func TransitionDenied(c *gin.Context, err error) {
	var terr *workflow.TransitionError
	if !errors.As(err, &terr) {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.TransitionsDenied.WithLabelValues(terr.Code).Inc()

	status := http.StatusBadRequest
	if terr.Code == workflow.CodeFaseNaoPermitida || terr.Code == workflow.CodeNaoAutorizado {
		status = http.StatusForbidden
	}

	body := gin.H{"error": terr.Message, "code": terr.Code}
	if terr.Phase != workflow.PhaseUnknown {
		body["status_atual"] = string(terr.Phase)
	}
	c.JSON(status, body)
}
