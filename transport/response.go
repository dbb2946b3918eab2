package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/utils/errors"
)

// Response is the common envelope for every API reply
type Response struct {
	ErrorCode string      `json:"error_code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeSuccessStatus(w, http.StatusOK, data)
}

func writeSuccessStatus(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		ErrorCode: constant.ErrorTypeCode[constant.Successful],
		Message:   constant.ErrorTypeMessage[constant.Successful],
		Data:      data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ce.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(Response{
		ErrorCode: ce.ErrorCode(),
		Message:   ce.Error(),
	})
}

// parseIDVar reads the {id} path variable as an unsigned integer
func parseIDVar(r *http.Request) (uint64, error) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "invalid id format")
	}
	return id, nil
}
