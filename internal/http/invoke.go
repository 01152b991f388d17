package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"

	"github.com/ATenderholt/rainbow-copier/internal/domain"
	"github.com/go-chi/chi/v5"
)

const (
	functionErrorHeader   = "X-Amz-Function-Error"
	executedVersionHeader = "X-Amz-Executed-Version"
)

type EventHandler interface {
	Handle(ctx context.Context, event domain.Event) error
}

type invokeError struct {
	Message string `json:"errorMessage"`
	Type    string `json:"errorType"`
}

// InvokeHandler serves the Lambda invoke API so notifications can be delivered
// over HTTP when running outside of Lambda.
type InvokeHandler struct {
	handler EventHandler
}

func NewInvokeHandler(handler EventHandler) InvokeHandler {
	return InvokeHandler{
		handler: handler,
	}
}

func (h InvokeHandler) Invoke(response http.ResponseWriter, request *http.Request) {
	function := chi.URLParam(request, "function")

	body, err := io.ReadAll(request.Body)
	if err != nil {
		logger.Errorf("Unable to read invocation body for %s: %v", function, err)
		writeJSON(response, http.StatusBadRequest, invokeError{Message: err.Error(), Type: "RequestBodyError"})
		return
	}

	event, err := domain.ParseEvent(body)
	if err != nil {
		logger.Errorf("Unable to parse invocation body for %s: %v", function, err)
		writeJSON(response, http.StatusBadRequest, invokeError{Message: err.Error(), Type: "InvalidRequestContentException"})
		return
	}

	logger.Infof("Invoking %s with %d records", function, len(event.Records))

	response.Header().Set(executedVersionHeader, "$LATEST")

	err = h.handler.Handle(request.Context(), event)
	if err != nil {
		response.Header().Set(functionErrorHeader, "Unhandled")
		writeJSON(response, http.StatusOK, invokeError{Message: err.Error(), Type: errorType(err)})
		return
	}

	writeJSON(response, http.StatusOK, nil)
}

func (h InvokeHandler) Health(response http.ResponseWriter, _ *http.Request) {
	writeJSON(response, http.StatusOK, map[string]string{"status": "UP"})
}

func errorType(err error) string {
	t := reflect.TypeOf(err)
	if t.Kind() == reflect.Ptr {
		return t.Elem().Name()
	}

	return t.Name()
}

func writeJSON(response http.ResponseWriter, status int, value interface{}) {
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(status)

	err := json.NewEncoder(response).Encode(value)
	if err != nil {
		logger.Errorf("Unable to write response: %v", err)
	}
}
