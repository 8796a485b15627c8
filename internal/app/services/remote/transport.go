package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/dto/responses"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"path/filepath"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// call describes one request to the booking service.
type call struct {
	name     string
	method   string
	path     string
	resource string
	token    string
	body     interface{}
	form     *multipartForm
	// fallback is shown to the user when a domain failure carries no message.
	fallback string
}

type multipartForm struct {
	body        *bytes.Buffer
	contentType string
}

type enveloped interface {
	Envelope() responses.RemoteEnvelope
}

// send performs c and decodes the reply into out. Failures come back as
// CustomError: transport for unreachable or unreadable replies, auth for
// 401, domain for success:false or a rejected request with a message.
func (c *bookingServiceClient) send(ctx context.Context, cl call, out enveloped) error {
	requestID := utils.GetRequestID(ctx)
	logPrefix := "bookingServiceClient." + cl.name

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		c.Log.Error(logPrefix+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		c.Log.Error(logPrefix+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if isTimeout(err) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(logPrefix+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRemoteDecodeResponse(err, cl.resource)
	}

	if resp.StatusCode == constvars.StatusUnauthorized {
		c.Log.Warn(logPrefix+" unauthorized",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrRemoteUnauthorized(constvars.ErrClientUnauthorized, cl.resource)
	}

	decodeErr := json.Unmarshal(bodyBytes, out)
	envelope := out.Envelope()
	isSuccessStatus := resp.StatusCode >= 200 && resp.StatusCode < 300

	if !isSuccessStatus {
		c.Log.Error(logPrefix+" unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorMessageKey, envelope.Message),
		)
		if decodeErr == nil && envelope.Message != "" {
			return exceptions.ErrRemoteDomain(envelope.Message, cl.resource)
		}
		return exceptions.ErrRemoteUnexpectedStatus(constvars.ErrClientServerUnreachable, cl.resource, resp.StatusCode)
	}

	if decodeErr != nil {
		c.Log.Error(logPrefix+" error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(decodeErr),
		)
		return exceptions.ErrRemoteDecodeResponse(decodeErr, cl.resource)
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = cl.fallback
		}
		c.Log.Warn(logPrefix+" rejected by booking service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorMessageKey, message),
		)
		return exceptions.ErrRemoteDomain(message, cl.resource)
	}
	return nil
}

func (c *bookingServiceClient) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	var body io.Reader
	contentType := ""

	switch {
	case cl.form != nil:
		body = cl.form.body
		contentType = cl.form.contentType
	case cl.body != nil:
		requestJSON, err := json.Marshal(cl.body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewBuffer(requestJSON)
		contentType = constvars.MIMEApplicationJSON
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.BaseUrl+cl.path, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if cl.token != "" {
		req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationBearerFormat, cl.token))
	}
	return req, nil
}

// buildProfileForm encodes request the way the booking service expects a
// profile update: plain fields, the address as a JSON string and an
// optional image file.
func buildProfileForm(request *requests.UpdateProfile) (*multipartForm, error) {
	buffer := new(bytes.Buffer)
	writer := multipart.NewWriter(buffer)

	address, err := json.Marshal(request.Address)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	fields := []struct {
		name  string
		value string
	}{
		{constvars.MultipartFieldName, request.Name},
		{constvars.MultipartFieldPhone, request.Phone},
		{constvars.MultipartFieldAddress, string(address)},
		{constvars.MultipartFieldDob, request.DOB},
		{constvars.MultipartFieldGender, request.Gender},
	}
	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, exceptions.ErrCreateHTTPRequest(err)
		}
	}

	if request.Image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, constvars.MultipartFieldImage, filepath.Base(request.Image.FileName)))
		contentType := request.Image.ContentType
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}
		header.Set(constvars.HeaderContentType, contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, exceptions.ErrCreateHTTPRequest(err)
		}
		if _, err := part.Write(request.Image.Data); err != nil {
			return nil, exceptions.ErrCreateHTTPRequest(err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	return &multipartForm{body: buffer, contentType: writer.FormDataContentType()}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
