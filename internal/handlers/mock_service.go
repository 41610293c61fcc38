package handlers

import (
	"context"
	"net/http"

	"contactbook/internal/models"
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockUsers struct {
	registerUser *models.User
	registerErr  error
	loginToken   string
	loginErr     error
	authUser     *models.User
	authErr      error
	getUser      *models.User
	getErr       error
	updateUser   *models.User
	updateErr    error
	logoutErr    error

	lastAuthToken  string
	lastRegister   service.RegisterRequest
	lastLogin      service.LoginRequest
	lastUpdateReq  service.UpdateUserRequest
	lastUpdateUser string
	logoutCalls    []string
}

func (m *mockUsers) Register(_ context.Context, req service.RegisterRequest) (*models.User, error) {
	m.lastRegister = req
	return m.registerUser, m.registerErr
}

func (m *mockUsers) Login(_ context.Context, req service.LoginRequest) (string, error) {
	m.lastLogin = req
	return m.loginToken, m.loginErr
}

func (m *mockUsers) Authorize(_ context.Context, token string) (*models.User, error) {
	m.lastAuthToken = token
	return m.authUser, m.authErr
}

func (m *mockUsers) Get(_ context.Context, username string) (*models.User, error) {
	return m.getUser, m.getErr
}

func (m *mockUsers) Update(_ context.Context, username string, req service.UpdateUserRequest) (*models.User, error) {
	m.lastUpdateUser = username
	m.lastUpdateReq = req
	return m.updateUser, m.updateErr
}

func (m *mockUsers) Logout(_ context.Context, username string) error {
	m.logoutCalls = append(m.logoutCalls, username)
	return m.logoutErr
}

type mockContacts struct {
	contact   *models.Contact
	err       error
	searchRes []models.Contact
	paging    models.Paging
	searchErr error

	lastUsername  string
	lastID        int64
	lastReq       service.ContactRequest
	lastSearchReq service.SearchContactRequest
	removeCalls   int
}

func (m *mockContacts) Create(_ context.Context, username string, req service.ContactRequest) (*models.Contact, error) {
	m.lastUsername = username
	m.lastReq = req
	return m.contact, m.err
}

func (m *mockContacts) Get(_ context.Context, username string, id int64) (*models.Contact, error) {
	m.lastUsername = username
	m.lastID = id
	return m.contact, m.err
}

func (m *mockContacts) Update(_ context.Context, username string, id int64, req service.ContactRequest) (*models.Contact, error) {
	m.lastUsername = username
	m.lastID = id
	m.lastReq = req
	return m.contact, m.err
}

func (m *mockContacts) Remove(_ context.Context, username string, id int64) error {
	m.lastUsername = username
	m.lastID = id
	m.removeCalls++
	return m.err
}

func (m *mockContacts) Search(_ context.Context, username string, req service.SearchContactRequest) ([]models.Contact, models.Paging, error) {
	m.lastUsername = username
	m.lastSearchReq = req
	return m.searchRes, m.paging, m.searchErr
}

type mockAddresses struct {
	address *models.Address
	list    []models.Address
	err     error

	lastUsername  string
	lastContactID int64
	lastAddressID int64
	lastReq       service.AddressRequest
	removeCalls   int
}

func (m *mockAddresses) Create(_ context.Context, username string, contactID int64, req service.AddressRequest) (*models.Address, error) {
	m.lastUsername = username
	m.lastContactID = contactID
	m.lastReq = req
	return m.address, m.err
}

func (m *mockAddresses) Get(_ context.Context, username string, contactID, addressID int64) (*models.Address, error) {
	m.lastUsername = username
	m.lastContactID = contactID
	m.lastAddressID = addressID
	return m.address, m.err
}

func (m *mockAddresses) Update(_ context.Context, username string, contactID, addressID int64, req service.AddressRequest) (*models.Address, error) {
	m.lastUsername = username
	m.lastContactID = contactID
	m.lastAddressID = addressID
	m.lastReq = req
	return m.address, m.err
}

func (m *mockAddresses) Remove(_ context.Context, username string, contactID, addressID int64) error {
	m.lastUsername = username
	m.lastContactID = contactID
	m.lastAddressID = addressID
	m.removeCalls++
	return m.err
}

func (m *mockAddresses) List(_ context.Context, username string, contactID int64) ([]models.Address, error) {
	m.lastUsername = username
	m.lastContactID = contactID
	return m.list, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// authedUsers returns a mockUsers whose Authorize resolves the given user
// for any token, for tests that exercise protected routes.
func authedUsers(u *models.User) *mockUsers {
	return &mockUsers{authUser: u}
}

func setAuth(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", token)
	}
}
