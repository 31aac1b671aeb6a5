package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbooks/ledgerbooks_app/internal/apperrors"
	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	portsrepo "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/services"
	"github.com/ledgerbooks/ledgerbooks_app/internal/dto"
)

// MockJournalRepository is a testify mock of the journal repository facade.
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var journals []domain.Journal
	if args.Get(0) != nil {
		journals = args.Get(0).([]domain.Journal)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return journals, token, args.Error(2)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine, postings []domain.ScheduledPosting, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, journal, lines, postings, balanceChanges)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListLinesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var lines []domain.JournalLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.JournalLine)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return lines, token, args.Error(2)
}

func (m *MockJournalRepository) FindPostingsByJournalID(ctx context.Context, journalID string) ([]domain.ScheduledPosting, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledPosting), args.Error(1)
}

// MockAccountService is a testify mock of the account service facade.
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

// MockTaxCodeService is a testify mock of the tax code service facade.
type MockTaxCodeService struct {
	mock.Mock
}

var _ portssvc.TaxCodeSvcFacade = (*MockTaxCodeService)(nil)

func (m *MockTaxCodeService) CreateTaxCode(ctx context.Context, req dto.CreateTaxCodeRequest, creatorUserID string) (*domain.TaxCode, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxCode), args.Error(1)
}

func (m *MockTaxCodeService) GetTaxCodeByID(ctx context.Context, taxCodeID string) (*domain.TaxCode, error) {
	args := m.Called(ctx, taxCodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxCode), args.Error(1)
}

func (m *MockTaxCodeService) GetTaxCodeByCode(ctx context.Context, code string) (*domain.TaxCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxCode), args.Error(1)
}

func (m *MockTaxCodeService) ListTaxCodes(ctx context.Context) ([]domain.TaxCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxCode), args.Error(1)
}

const (
	testUserID    = "user-001"
	cashAccountID = "acc-cash"
	salesAcctID   = "acc-sales"
)

func testAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		cashAccountID: {
			AccountID:    cashAccountID,
			Code:         "10001",
			Name:         "Cash at Bank",
			AccountType:  domain.Asset,
			CurrencyCode: "USD",
			IsActive:     true,
		},
		salesAcctID: {
			AccountID:    salesAcctID,
			Code:         "40001",
			Name:         "Sales Revenue",
			AccountType:  domain.Income,
			CurrencyCode: "USD",
			IsActive:     true,
		},
	}
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func balancedCreateRequest() dto.CreateJournalRequest {
	return dto.CreateJournalRequest{
		Date:         time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Reference:    "JE-2024-0042",
		Description:  "March cash sales",
		CurrencyCode: "USD",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: cashAccountID, Debit: amount("250.00")},
			{AccountID: salesAcctID, Credit: amount("250.00")},
		},
	}
}

func newTestJournalService(repo *MockJournalRepository, accounts *MockAccountService, taxCodes *MockTaxCodeService) portssvc.JournalSvcFacade {
	return NewJournalService(repo, accounts, taxCodes, func() string { return "JE-GEN-0001" })
}

func TestCreateJournal_Success(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	mockAccounts := new(MockAccountService)
	mockTaxCodes := new(MockTaxCodeService)
	svc := newTestJournalService(mockRepo, mockAccounts, mockTaxCodes)

	mockAccounts.On("GetAccountByIDs", mock.Anything, []string{cashAccountID, salesAcctID}).Return(testAccounts(), nil)
	mockRepo.On("SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	journal, err := svc.CreateJournal(context.Background(), balancedCreateRequest(), testUserID)

	require.NoError(t, err)
	require.NotNil(t, journal)
	assert.NotEmpty(t, journal.JournalID)
	assert.Equal(t, "JE-2024-0042", journal.Reference)
	assert.Equal(t, domain.Posted, journal.Status)
	assert.False(t, journal.IsRecurring)
	assert.True(t, decimal.RequireFromString("250.00").Equal(journal.Amount))
	require.Len(t, journal.Lines, 2)
	require.Len(t, journal.Postings, 1)
	assert.Equal(t, journal.JournalDate, journal.Postings[0].PostingDate)
	assert.Equal(t, domain.PostingPending, journal.Postings[0].Status)

	// Asset debited and income credited both increase their balances.
	saveCall := mockRepo.Calls[0]
	balanceChanges := saveCall.Arguments.Get(4).(map[string]decimal.Decimal)
	assert.True(t, decimal.RequireFromString("250.00").Equal(balanceChanges[cashAccountID]))
	assert.True(t, decimal.RequireFromString("250.00").Equal(balanceChanges[salesAcctID]))

	mockRepo.AssertExpectations(t)
	mockAccounts.AssertExpectations(t)
}

func TestCreateJournal_GeneratesReferenceWhenMissing(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	mockAccounts := new(MockAccountService)
	svc := newTestJournalService(mockRepo, mockAccounts, new(MockTaxCodeService))

	mockAccounts.On("GetAccountByIDs", mock.Anything, mock.Anything).Return(testAccounts(), nil)
	mockRepo.On("SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := balancedCreateRequest()
	req.Reference = ""

	journal, err := svc.CreateJournal(context.Background(), req, testUserID)

	require.NoError(t, err)
	assert.Equal(t, "JE-GEN-0001", journal.Reference)
}

func TestCreateJournal_RecurringExpandsPostings(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	mockAccounts := new(MockAccountService)
	svc := newTestJournalService(mockRepo, mockAccounts, new(MockTaxCodeService))

	mockAccounts.On("GetAccountByIDs", mock.Anything, mock.Anything).Return(testAccounts(), nil)
	mockRepo.On("SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	occurrences := 3
	req := balancedCreateRequest()
	req.Recurrence = &dto.RecurrenceRequest{
		Frequency:   "monthly",
		StartDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		Occurrences: &occurrences,
	}

	journal, err := svc.CreateJournal(context.Background(), req, testUserID)

	require.NoError(t, err)
	assert.True(t, journal.IsRecurring)
	require.Len(t, journal.Postings, 3)
	assert.Equal(t, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), journal.Postings[0].PostingDate)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), journal.Postings[1].PostingDate)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), journal.Postings[2].PostingDate)
	for i, posting := range journal.Postings {
		assert.Equal(t, i+1, posting.Sequence)
		assert.Equal(t, domain.PostingPending, posting.Status)
	}
}

func TestCreateJournal_UnboundedRecurrenceRejected(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	svc := newTestJournalService(mockRepo, new(MockAccountService), new(MockTaxCodeService))

	req := balancedCreateRequest()
	req.Recurrence = &dto.RecurrenceRequest{
		Frequency: "MONTHLY",
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := svc.CreateJournal(context.Background(), req, testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	mockRepo.AssertNotCalled(t, "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateJournal_UnbalancedRejected(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	mockAccounts := new(MockAccountService)
	svc := newTestJournalService(mockRepo, mockAccounts, new(MockTaxCodeService))

	mockAccounts.On("GetAccountByIDs", mock.Anything, mock.Anything).Return(testAccounts(), nil)

	req := balancedCreateRequest()
	req.Lines[1].Credit = amount("249.50")

	_, err := svc.CreateJournal(context.Background(), req, testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)
	mockRepo.AssertNotCalled(t, "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateJournal_SingleAccountRejected(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	svc := newTestJournalService(mockRepo, new(MockAccountService), new(MockTaxCodeService))

	req := balancedCreateRequest()
	req.Lines[1].AccountID = cashAccountID

	_, err := svc.CreateJournal(context.Background(), req, testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJournalMinAccounts)
}

func TestCreateJournal_UnknownAccountRejected(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	mockAccounts := new(MockAccountService)
	svc := newTestJournalService(mockRepo, mockAccounts, new(MockTaxCodeService))

	accounts := testAccounts()
	delete(accounts, salesAcctID)
	mockAccounts.On("GetAccountByIDs", mock.Anything, mock.Anything).Return(accounts, nil)

	_, err := svc.CreateJournal(context.Background(), balancedCreateRequest(), testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCreateJournal_InactiveAccountRejected(t *testing.T) {
	mockAccounts := new(MockAccountService)
	svc := newTestJournalService(new(MockJournalRepository), mockAccounts, new(MockTaxCodeService))

	accounts := testAccounts()
	acc := accounts[salesAcctID]
	acc.IsActive = false
	accounts[salesAcctID] = acc
	mockAccounts.On("GetAccountByIDs", mock.Anything, mock.Anything).Return(accounts, nil)

	_, err := svc.CreateJournal(context.Background(), balancedCreateRequest(), testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestCreateJournal_CurrencyMismatchRejected(t *testing.T) {
	mockAccounts := new(MockAccountService)
	svc := newTestJournalService(new(MockJournalRepository), mockAccounts, new(MockTaxCodeService))

	accounts := testAccounts()
	acc := accounts[cashAccountID]
	acc.CurrencyCode = "EUR"
	accounts[cashAccountID] = acc
	mockAccounts.On("GetAccountByIDs", mock.Anything, mock.Anything).Return(accounts, nil)

	_, err := svc.CreateJournal(context.Background(), balancedCreateRequest(), testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestCreateJournal_UnknownTaxCodeRejected(t *testing.T) {
	mockAccounts := new(MockAccountService)
	mockTaxCodes := new(MockTaxCodeService)
	svc := newTestJournalService(new(MockJournalRepository), mockAccounts, mockTaxCodes)

	mockAccounts.On("GetAccountByIDs", mock.Anything, mock.Anything).Return(testAccounts(), nil)
	mockTaxCodes.On("GetTaxCodeByCode", mock.Anything, "VAT20").Return(nil, apperrors.ErrNotFound)

	req := balancedCreateRequest()
	req.Lines[0].TaxCode = "VAT20"

	_, err := svc.CreateJournal(context.Background(), req, testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTaxCodeNotFound)
	mockTaxCodes.AssertExpectations(t)
}

func TestValidateDraft_Verdicts(t *testing.T) {
	svc := newTestJournalService(new(MockJournalRepository), new(MockAccountService), new(MockTaxCodeService))

	tests := []struct {
		name         string
		req          dto.ValidateDraftRequest
		wantBalanced bool
		wantSubmit   bool
		wantDiff     string
	}{
		{
			name: "balanced and complete",
			req: dto.ValidateDraftRequest{
				Reference:   "JE-1",
				Description: "Office rent",
				Lines: []dto.ValidateDraftLineRequest{
					{AccountID: cashAccountID, Debit: "900"},
					{AccountID: salesAcctID, Credit: "900"},
				},
			},
			wantBalanced: true,
			wantSubmit:   true,
			wantDiff:     "0",
		},
		{
			name: "unbalanced",
			req: dto.ValidateDraftRequest{
				Reference:   "JE-2",
				Description: "Off by fifty cents",
				Lines: []dto.ValidateDraftLineRequest{
					{AccountID: cashAccountID, Debit: "100.00"},
					{AccountID: salesAcctID, Credit: "99.50"},
				},
			},
			wantBalanced: false,
			wantSubmit:   false,
			wantDiff:     "0.5",
		},
		{
			name: "garbage amounts count as zero",
			req: dto.ValidateDraftRequest{
				Reference:   "JE-3",
				Description: "Typing in progress",
				Lines: []dto.ValidateDraftLineRequest{
					{AccountID: cashAccountID, Debit: "abc"},
					{AccountID: salesAcctID, Credit: "-40"},
				},
			},
			wantBalanced: true,
			wantSubmit:   true,
			wantDiff:     "0",
		},
		{
			name: "missing description blocks submit",
			req: dto.ValidateDraftRequest{
				Reference: "JE-4",
				Lines: []dto.ValidateDraftLineRequest{
					{AccountID: cashAccountID, Debit: "10"},
					{AccountID: salesAcctID, Credit: "10"},
				},
			},
			wantBalanced: true,
			wantSubmit:   false,
			wantDiff:     "0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verdict := svc.ValidateDraft(context.Background(), tc.req)
			assert.Equal(t, tc.wantBalanced, verdict.IsBalanced)
			assert.Equal(t, tc.wantSubmit, verdict.CanSubmit)
			assert.True(t, decimal.RequireFromString(tc.wantDiff).Equal(verdict.Difference), "difference %s", verdict.Difference)
		})
	}
}

func TestGetJournalByID_LoadsLinesAndPostings(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	svc := newTestJournalService(mockRepo, new(MockAccountService), new(MockTaxCodeService))

	journal := &domain.Journal{JournalID: "jrn-1", Reference: "JE-1"}
	lines := []domain.JournalLine{{LineID: "line-1", JournalID: "jrn-1"}}
	postings := []domain.ScheduledPosting{{PostingID: "post-1", JournalID: "jrn-1", Sequence: 1}}

	mockRepo.On("FindJournalByID", mock.Anything, "jrn-1").Return(journal, nil)
	mockRepo.On("FindLinesByJournalID", mock.Anything, "jrn-1").Return(lines, nil)
	mockRepo.On("FindPostingsByJournalID", mock.Anything, "jrn-1").Return(postings, nil)

	got, err := svc.GetJournalByID(context.Background(), "jrn-1")

	require.NoError(t, err)
	assert.Len(t, got.Lines, 1)
	assert.Len(t, got.Postings, 1)
	mockRepo.AssertExpectations(t)
}

func TestGetJournalByID_NotFound(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	svc := newTestJournalService(mockRepo, new(MockAccountService), new(MockTaxCodeService))

	mockRepo.On("FindJournalByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.GetJournalByID(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "FindLinesByJournalID", mock.Anything, mock.Anything)
}

func TestListScheduledPostings_NotFound(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	svc := newTestJournalService(mockRepo, new(MockAccountService), new(MockTaxCodeService))

	mockRepo.On("FindJournalByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.ListScheduledPostings(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateJournal_DescriptionOnly(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	svc := newTestJournalService(mockRepo, new(MockAccountService), new(MockTaxCodeService))

	existing := &domain.Journal{JournalID: "jrn-1", Description: "old"}
	mockRepo.On("FindJournalByID", mock.Anything, "jrn-1").Return(existing, nil)
	mockRepo.On("UpdateJournal", mock.Anything, mock.MatchedBy(func(j domain.Journal) bool {
		return j.Description == "corrected narration" && j.LastUpdatedBy == testUserID
	})).Return(nil)

	desc := "corrected narration"
	got, err := svc.UpdateJournal(context.Background(), "jrn-1", dto.UpdateJournalRequest{Description: &desc}, testUserID)

	require.NoError(t, err)
	assert.Equal(t, "corrected narration", got.Description)
	mockRepo.AssertExpectations(t)
}

func TestListAccountLines_ReturnsLedgerPage(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	mockAccounts := new(MockAccountService)
	svc := newTestJournalService(mockRepo, mockAccounts, new(MockTaxCodeService))

	cash := testAccounts()[cashAccountID]
	lines := []domain.JournalLine{
		{LineID: "line-2", JournalID: "jrn-2", AccountID: cashAccountID, Debit: decimal.RequireFromString("50.00")},
		{LineID: "line-1", JournalID: "jrn-1", AccountID: cashAccountID, Credit: decimal.RequireFromString("25.00")},
	}
	token := "next-page"
	mockAccounts.On("GetAccountByID", mock.Anything, cashAccountID).Return(&cash, nil)
	mockRepo.On("ListLinesByAccountID", mock.Anything, cashAccountID, 20, (*string)(nil)).Return(lines, &token, nil)

	resp, err := svc.ListAccountLines(context.Background(), cashAccountID, dto.ListAccountLinesParams{})

	require.NoError(t, err)
	assert.Equal(t, cashAccountID, resp.AccountID)
	require.Len(t, resp.Lines, 2)
	assert.Equal(t, "jrn-2", resp.Lines[0].JournalID)
	assert.True(t, decimal.RequireFromString("25.00").Equal(resp.Lines[1].Credit))
	require.NotNil(t, resp.NextToken)
	assert.Equal(t, "next-page", *resp.NextToken)
	mockRepo.AssertExpectations(t)
	mockAccounts.AssertExpectations(t)
}

func TestListAccountLines_UnknownAccount(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	mockAccounts := new(MockAccountService)
	svc := newTestJournalService(mockRepo, mockAccounts, new(MockTaxCodeService))

	mockAccounts.On("GetAccountByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.ListAccountLines(context.Background(), "missing", dto.ListAccountLinesParams{})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "ListLinesByAccountID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListJournals_DefaultLimit(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	svc := newTestJournalService(mockRepo, new(MockAccountService), new(MockTaxCodeService))

	mockRepo.On("ListJournals", mock.Anything, 20, (*string)(nil)).Return([]domain.Journal{{JournalID: "jrn-1"}}, nil, nil)

	resp, err := svc.ListJournals(context.Background(), dto.ListJournalsParams{})

	require.NoError(t, err)
	assert.Len(t, resp.Journals, 1)
	assert.Nil(t, resp.NextToken)
	mockRepo.AssertExpectations(t)
}
