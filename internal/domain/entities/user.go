package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserKind identifies one of the user profiles.
type UserKind string

const (
	UserCitizen UserKind = "citizen"
	UserCompany UserKind = "company"
	UserAdmin   UserKind = "admin"
)

const (
	CitizenMaxActiveRequests = 5
	CompanyMonthlyLimitKg    = 1000.0
	minUserNameLength        = 3
)

var userAliases = map[string]UserKind{
	"citizen":       UserCitizen,
	"cidadao":       UserCitizen,
	"company":       UserCompany,
	"empresa":       UserCompany,
	"admin":         UserAdmin,
	"administrator": UserAdmin,
	"administrador": UserAdmin,
}

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	cpfPattern   = regexp.MustCompile(`^\d{11}$`)
	cnpjPattern  = regexp.MustCompile(`^\d{14}$`)
)

// UserParams carries the raw construction input of every user kind; only
// the fields of the chosen kind are read.
type UserParams struct {
	ID          string
	Name        string
	Email       string
	CPF         string
	CNPJ        string
	LegalName   string
	AccessLevel int
}

// User is the requester of disposals. The core reads its name, its active
// flag and its quota; everything else is profile data.
type User struct {
	ID          string
	Kind        UserKind
	Name        string
	Email       string
	CPF         string
	CNPJ        string
	LegalName   string
	AccessLevel int
	CreatedAt   time.Time

	active         bool
	activeRequests int
	monthlyKg      float64
	notifications  []string
}

// NewUser builds a user of the given kind discriminator.
func NewUser(kind string, p UserParams) (*User, error) {
	k, ok := userAliases[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, fmt.Errorf("%w: user kind %q", ErrUnknownKind, kind)
	}

	name := strings.TrimSpace(p.Name)
	if len([]rune(name)) < minUserNameLength {
		return nil, fmt.Errorf("%w: name must have at least %d characters", ErrInvalidParameter, minUserNameLength)
	}
	email := strings.TrimSpace(p.Email)
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email %q", ErrInvalidParameter, p.Email)
	}

	u := &User{
		ID:        strings.TrimSpace(p.ID),
		Kind:      k,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
		active:    true,
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	switch k {
	case UserCitizen:
		if !cpfPattern.MatchString(p.CPF) {
			return nil, fmt.Errorf("%w: CPF must contain 11 digits", ErrInvalidParameter)
		}
		u.CPF = p.CPF
	case UserCompany:
		if !cnpjPattern.MatchString(p.CNPJ) {
			return nil, fmt.Errorf("%w: CNPJ must contain 14 digits", ErrInvalidParameter)
		}
		u.CNPJ = p.CNPJ
		u.LegalName = strings.TrimSpace(p.LegalName)
	case UserAdmin:
		level := p.AccessLevel
		if level == 0 {
			level = 1
		}
		if level < 1 || level > 3 {
			return nil, fmt.Errorf("%w: access level must be 1, 2 or 3", ErrInvalidParameter)
		}
		u.AccessLevel = level
	}
	return u, nil
}

func (u *User) Active() bool               { return u.active }
func (u *User) ActiveRequests() int        { return u.activeRequests }
func (u *User) MonthlyDisposedKg() float64 { return u.monthlyKg }

func (u *User) Activate()   { u.active = true }
func (u *User) Deactivate() { u.active = false }

// CanManageUsers holds for administrators from level 2 up.
func (u *User) CanManageUsers() bool {
	return u.Kind == UserAdmin && u.AccessLevel >= 2
}

// CanRequestDisposal reports whether the user may open a new request.
func (u *User) CanRequestDisposal() bool {
	if !u.active {
		return false
	}
	switch u.Kind {
	case UserCitizen:
		return u.activeRequests < CitizenMaxActiveRequests
	case UserCompany:
		return u.monthlyKg < CompanyMonthlyLimitKg
	default:
		return false
	}
}

// reserveRequest takes one request slot from the user's quota.
func (u *User) reserveRequest() error {
	if !u.CanRequestDisposal() {
		return fmt.Errorf("%w: %s %s cannot open a new disposal request", ErrQuotaExceeded, u.Kind, u.Name)
	}
	if u.Kind == UserCitizen {
		u.activeRequests++
	}
	return nil
}

func (u *User) releaseRequest() {
	if u.Kind == UserCitizen && u.activeRequests > 0 {
		u.activeRequests--
	}
}

// checkWeight fails when recording weightKg would break the monthly limit.
func (u *User) checkWeight(weightKg float64) error {
	if u.Kind != UserCompany {
		return nil
	}
	if u.monthlyKg+weightKg > CompanyMonthlyLimitKg {
		return fmt.Errorf("%w: monthly limit of %gkg reached", ErrQuotaExceeded, CompanyMonthlyLimitKg)
	}
	return nil
}

func (u *User) recordWeight(weightKg float64) {
	if u.Kind == UserCompany {
		u.monthlyKg += weightKg
	}
}

// ResetMonth clears the monthly weight counter of a company.
func (u *User) ResetMonth() {
	u.monthlyKg = 0
}

// Notify appends a timestamped message to the user's inbox.
func (u *User) Notify(at time.Time, message string) {
	u.notifications = append(u.notifications, fmt.Sprintf("[%s] %s", at.Format("02/01/2006 15:04"), message))
}

func (u *User) Notifications() []string {
	out := make([]string, len(u.notifications))
	copy(out, u.notifications)
	return out
}

func (u *User) ClearNotifications() {
	u.notifications = nil
}

// Clone returns a detached copy of the user.
func (u *User) Clone() *User {
	c := *u
	c.notifications = u.Notifications()
	return &c
}

func (u *User) String() string {
	return fmt.Sprintf("%s - %s (%s)", u.Kind, u.Name, u.Email)
}
