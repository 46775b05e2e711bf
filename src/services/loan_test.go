package services

import (
	"sync"
	"testing"
	"time"

	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueLoanLifecycle(t *testing.T) {
	env := newTestEnv(t)
	bookcase := shelvedWorld(t, env)
	book := createBook(t, env, bookcase.ID, uniqueISBN(1))
	user := createUser(t, env, "reader@libritrack.local")

	loan, err := env.loans.IssueLoan(user.Email, book.ISBN, daysFromNow(14))
	require.NoError(t, err)
	assert.NotEmpty(t, loan.Id)
	assert.True(t, loan.IsActive)
	assert.Nil(t, loan.ReturnedAt)
	assert.Equal(t, user.Id, loan.UserId)
	assert.Equal(t, book.ID, loan.BookId)

	// a book can only be out once at a time
	_, err = env.loans.IssueLoan(user.Email, book.ISBN, daysFromNow(7))
	require.Error(t, err)
	assert.Equal(t, ErrAlreadyLoaned, KindOf(err))

	returned, err := env.loans.ReturnLoan(loan.Id)
	require.NoError(t, err)
	assert.False(t, returned.IsActive)
	require.NotNil(t, returned.ReturnedAt)

	_, err = env.loans.IssueLoan(user.Email, book.ISBN, daysFromNow(7))
	require.NoError(t, err)
}

func TestIssueLoanValidation(t *testing.T) {
	env := newTestEnv(t)
	bookcase := shelvedWorld(t, env)
	book := createBook(t, env, bookcase.ID, uniqueISBN(1))
	user := createUser(t, env, "reader@libritrack.local")

	_, err := env.loans.IssueLoan(user.Email, book.ISBN, time.Now().Add(-time.Hour))
	assert.Equal(t, ErrInvalidDueDate, KindOf(err))

	_, err = env.loans.IssueLoan("nobody@libritrack.local", book.ISBN, daysFromNow(7))
	assert.Equal(t, ErrUnknownUser, KindOf(err))

	_, err = env.loans.IssueLoan(user.Email, "9999999999999", daysFromNow(7))
	assert.Equal(t, ErrUnknownBook, KindOf(err))
}

func TestReturnLoanIdempotence(t *testing.T) {
	env := newTestEnv(t)
	bookcase := shelvedWorld(t, env)
	book := createBook(t, env, bookcase.ID, uniqueISBN(1))
	user := createUser(t, env, "reader@libritrack.local")

	loan, err := env.loans.IssueLoan(user.Email, book.ISBN, daysFromNow(7))
	require.NoError(t, err)

	returned, err := env.loans.ReturnLoan(loan.Id)
	require.NoError(t, err)
	firstReturnedAt := *returned.ReturnedAt

	_, err = env.loans.ReturnLoan(loan.Id)
	require.Error(t, err)
	assert.Equal(t, ErrAlreadyReturned, KindOf(err))

	var stored models.LoanModel
	require.NoError(t, env.db.First(&stored, "id = ?", loan.Id).Error)
	require.NotNil(t, stored.ReturnedAt)
	assert.WithinDuration(t, firstReturnedAt, *stored.ReturnedAt, time.Second)
	assert.False(t, stored.IsActive)
}

func TestUpdateLoan(t *testing.T) {
	env := newTestEnv(t)
	bookcase := shelvedWorld(t, env)
	book := createBook(t, env, bookcase.ID, uniqueISBN(1))
	user := createUser(t, env, "reader@libritrack.local")
	other := createUser(t, env, "other@libritrack.local")

	loan, err := env.loans.IssueLoan(user.Email, book.ISBN, daysFromNow(7))
	require.NoError(t, err)

	newDue := daysFromNow(21)
	updated, err := env.loans.UpdateLoan(loan.Id, newDue, "")
	require.NoError(t, err)
	assert.WithinDuration(t, newDue, updated.DueDate, time.Second)
	assert.Equal(t, user.Id, updated.UserId)

	updated, err = env.loans.UpdateLoan(loan.Id, newDue, other.Email)
	require.NoError(t, err)
	assert.Equal(t, other.Id, updated.UserId)

	_, err = env.loans.UpdateLoan(loan.Id, time.Now().Add(-time.Hour), "")
	assert.Equal(t, ErrInvalidDueDate, KindOf(err))

	_, err = env.loans.UpdateLoan(loan.Id, newDue, "nobody@libritrack.local")
	assert.Equal(t, ErrUnknownUser, KindOf(err))

	_, err = env.loans.ReturnLoan(loan.Id)
	require.NoError(t, err)

	_, err = env.loans.UpdateLoan(loan.Id, daysFromNow(30), "")
	assert.Equal(t, ErrAlreadyReturned, KindOf(err))
}

func TestConcurrentIssueSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	bookcase := shelvedWorld(t, env)
	book := createBook(t, env, bookcase.ID, uniqueISBN(1))

	const attempts = 6
	users := make([]*models.UserModel, attempts)
	for i := 0; i < attempts; i++ {
		users[i] = createUser(t, env, uniqueISBN(i)+"@libritrack.local")
	}

	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.loans.IssueLoan(users[i].Email, book.ISBN, daysFromNow(7))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, ErrAlreadyLoaned, KindOf(err))
		}
	}
	assert.Equal(t, 1, succeeded)

	var active int64
	require.NoError(t, env.db.Model(&models.LoanModel{}).
		Where("book_id = ? AND is_active = ?", book.ID, true).
		Count(&active).Error)
	assert.Equal(t, int64(1), active)
}

func TestDeleteUserWithActiveLoan(t *testing.T) {
	env := newTestEnv(t)
	bookcase := shelvedWorld(t, env)
	book := createBook(t, env, bookcase.ID, uniqueISBN(1))
	user := createUser(t, env, "reader@libritrack.local")

	loan, err := env.loans.IssueLoan(user.Email, book.ISBN, daysFromNow(7))
	require.NoError(t, err)

	err = env.users.DeleteUser(user.Id)
	assert.Equal(t, ErrAlreadyLoaned, KindOf(err))

	_, err = env.loans.ReturnLoan(loan.Id)
	require.NoError(t, err)

	require.NoError(t, env.users.DeleteUser(user.Id))

	_, err = env.users.GetUserByEmail(user.Email)
	assert.Equal(t, ErrUnknownUser, KindOf(err))
}

func TestGetAllLoansScoped(t *testing.T) {
	env := newTestEnv(t)
	bookcase := shelvedWorld(t, env)
	bookA := createBook(t, env, bookcase.ID, uniqueISBN(1))
	bookB := createBook(t, env, bookcase.ID, uniqueISBN(2))
	user := createUser(t, env, "reader@libritrack.local")

	_, err := env.loans.IssueLoan(user.Email, bookA.ISBN, daysFromNow(7))
	require.NoError(t, err)
	_, err = env.loans.IssueLoan(user.Email, bookB.ISBN, daysFromNow(7))
	require.NoError(t, err)

	loans, meta, err := env.loans.GetAllLoans(1, 10, &user.Id, nil)
	require.NoError(t, err)
	assert.Len(t, loans, 2)
	assert.Equal(t, int64(2), meta.Total)
	assert.Equal(t, user.Email, loans[0].UserEmail)

	loans, _, err = env.loans.GetAllLoans(1, 10, nil, &bookA.ID)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, bookA.Title, loans[0].BookTitle)
}
