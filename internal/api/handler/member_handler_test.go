package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devassignment/member-service/internal/core/domain"
	"github.com/devassignment/member-service/internal/core/ports"
)

type listCall struct {
	firstName, lastName, sort string
	page, size                int
}

type stubMemberService struct {
	lastList listCall
	listFn   func() (*ports.PagedMembers, error)
	getFn    func(id string) (*domain.Member, error)
	createFn func(in ports.MemberInput) (*domain.Member, error)
	updateFn func(id string, in ports.MemberInput) (*domain.Member, error)
	deleteFn func(id string) error
}

func (s *stubMemberService) List(_ context.Context, firstName, lastName string, page, size int, sort string) (*ports.PagedMembers, error) {
	s.lastList = listCall{firstName: firstName, lastName: lastName, sort: sort, page: page, size: size}
	if s.listFn != nil {
		return s.listFn()
	}
	return &ports.PagedMembers{Items: nil, Page: page, Size: size, First: page == 0, Last: true}, nil
}

func (s *stubMemberService) GetByID(_ context.Context, id string) (*domain.Member, error) {
	return s.getFn(id)
}

func (s *stubMemberService) Create(_ context.Context, in ports.MemberInput) (*domain.Member, error) {
	return s.createFn(in)
}

func (s *stubMemberService) Update(_ context.Context, id string, in ports.MemberInput) (*domain.Member, error) {
	return s.updateFn(id, in)
}

func (s *stubMemberService) Delete(_ context.Context, id string) error {
	return s.deleteFn(id)
}

func newMemberContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMemberHandler_List_PageTranslation(t *testing.T) {
	stub := &stubMemberService{}
	handler := NewMemberHandler(stub)

	// one-based page 2 reaches the service as zero-based page 1
	c, rec := newMemberContext(t, http.MethodGet, "/api/v1/members?firstName=Ga&lastName=He&page=2&size=10&sort=firstName,asc", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	got := stub.lastList
	if got.page != 1 || got.size != 10 {
		t.Fatalf("unexpected paging args: %+v", got)
	}
	if got.firstName != "Ga" || got.lastName != "He" || got.sort != "firstName,asc" {
		t.Fatalf("unexpected query args: %+v", got)
	}
}

func TestMemberHandler_List_Defaults(t *testing.T) {
	stub := &stubMemberService{}
	handler := NewMemberHandler(stub)

	c, _ := newMemberContext(t, http.MethodGet, "/api/v1/members", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	got := stub.lastList
	if got.page != 0 || got.size != 10 {
		t.Fatalf("unexpected default paging: %+v", got)
	}
	if got.sort != "" {
		t.Fatalf("sort default belongs to the service, got %q", got.sort)
	}
}

func TestMemberHandler_List_BadPageParam(t *testing.T) {
	handler := NewMemberHandler(&stubMemberService{})

	c, _ := newMemberContext(t, http.MethodGet, "/api/v1/members?page=abc", "")
	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestMemberHandler_List_Envelope(t *testing.T) {
	stub := &stubMemberService{
		listFn: func() (*ports.PagedMembers, error) {
			return &ports.PagedMembers{
				Items: []*domain.Member{
					{ID: "id-1", FirstName: "Gagan", LastName: "Hebbar", Email: "g@x.com", DateOfBirth: "1996-07-31"},
				},
				Page:          1,
				Size:          10,
				TotalElements: 15,
				TotalPages:    2,
				First:         false,
				Last:          true,
			}, nil
		},
	}
	handler := NewMemberHandler(stub)

	c, rec := newMemberContext(t, http.MethodGet, "/api/v1/members?page=2", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["page"] != float64(1) || resp["totalElements"] != float64(15) || resp["totalPages"] != float64(2) {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp["first"] != false || resp["last"] != true {
		t.Fatalf("unexpected page flags: %+v", resp)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one data row: %+v", resp["data"])
	}
	row := data[0].(map[string]any)
	if row["firstName"] != "Gagan" || row["dateOfBirth"] != "1996-07-31" {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestMemberHandler_GetByID_NotFound(t *testing.T) {
	stub := &stubMemberService{
		getFn: func(id string) (*domain.Member, error) {
			return nil, domain.ErrMemberNotFound
		},
	}
	handler := NewMemberHandler(stub)

	c, _ := newMemberContext(t, http.MethodGet, "/api/v1/members/x", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.GetByID(c); !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound to propagate, got %v", err)
	}
}

func TestMemberHandler_Create_Success(t *testing.T) {
	stub := &stubMemberService{
		createFn: func(in ports.MemberInput) (*domain.Member, error) {
			if in.FirstName != "Gagan" || in.Email != "g@x.com" || in.DateOfBirth != "1996-07-31" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Member{ID: "id-1", FirstName: in.FirstName, LastName: in.LastName, Email: in.Email, DateOfBirth: in.DateOfBirth}, nil
		},
	}
	handler := NewMemberHandler(stub)

	body := `{"firstName":"Gagan","lastName":"Hebbar","dateOfBirth":"1996-07-31","email":"g@x.com"}`
	c, rec := newMemberContext(t, http.MethodPost, "/api/v1/members", body)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "id-1" {
		t.Fatalf("expected generated id in response: %+v", resp)
	}
}

func TestMemberHandler_Create_DuplicateEmail(t *testing.T) {
	stub := &stubMemberService{
		createFn: func(in ports.MemberInput) (*domain.Member, error) {
			return nil, domain.ErrEmailExists
		},
	}
	handler := NewMemberHandler(stub)

	body := `{"firstName":"Gagan","lastName":"Hebbar","dateOfBirth":"1996-07-31","email":"g@x.com"}`
	c, _ := newMemberContext(t, http.MethodPost, "/api/v1/members", body)
	if err := handler.Create(c); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists to propagate, got %v", err)
	}
}

func TestMemberHandler_Create_Validation(t *testing.T) {
	handler := NewMemberHandler(&stubMemberService{
		createFn: func(in ports.MemberInput) (*domain.Member, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})

	cases := []string{
		`{"lastName":"Hebbar","dateOfBirth":"1996-07-31","email":"g@x.com"}`,      // first name missing
		`{"firstName":"Gagan","lastName":"Hebbar","dateOfBirth":"1996-07-31"}`,    // email missing
		`{"firstName":"Gagan","lastName":"Hebbar","dateOfBirth":"1996-07-31","email":"nope"}`, // bad email
		`{"firstName":"Gagan","lastName":"Hebbar","dateOfBirth":"31-07-1996","email":"g@x.com"}`, // bad date format
	}
	for _, body := range cases {
		c, _ := newMemberContext(t, http.MethodPost, "/api/v1/members", body)
		err := handler.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestMemberHandler_Update_Success(t *testing.T) {
	stub := &stubMemberService{
		updateFn: func(id string, in ports.MemberInput) (*domain.Member, error) {
			if id != "id-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Member{ID: id, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email, DateOfBirth: in.DateOfBirth}, nil
		},
	}
	handler := NewMemberHandler(stub)

	body := `{"firstName":"New","lastName":"Name","dateOfBirth":"1996-07-31","email":"new@x.com"}`
	c, rec := newMemberContext(t, http.MethodPut, "/api/v1/members/x", body)
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMemberHandler_Update_DuplicateEmail(t *testing.T) {
	stub := &stubMemberService{
		updateFn: func(id string, in ports.MemberInput) (*domain.Member, error) {
			return nil, domain.ErrEmailExists
		},
	}
	handler := NewMemberHandler(stub)

	body := `{"firstName":"New","lastName":"Name","dateOfBirth":"1996-07-31","email":"taken@x.com"}`
	c, _ := newMemberContext(t, http.MethodPut, "/api/v1/members/x", body)
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := handler.Update(c); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists to propagate, got %v", err)
	}
}

func TestMemberHandler_Delete(t *testing.T) {
	stub := &stubMemberService{
		deleteFn: func(id string) error {
			if id != "id-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewMemberHandler(stub)

	c, rec := newMemberContext(t, http.MethodDelete, "/api/v1/members/x", "")
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Member deleted successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestMemberHandler_Delete_NotFound(t *testing.T) {
	stub := &stubMemberService{
		deleteFn: func(id string) error { return domain.ErrMemberNotFound },
	}
	handler := NewMemberHandler(stub)

	c, _ := newMemberContext(t, http.MethodDelete, "/api/v1/members/x", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound to propagate, got %v", err)
	}
}
