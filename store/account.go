package store

import (
	"github.com/google/uuid"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

// CreateAccount registers an account. The password digest is computed
// by the caller; the store never sees a plaintext password.
func (s *GreenEpidemicStore) CreateAccount(email, passwordDigest, name string) (*schema.Account, error) {
	a := schema.Account{
		ID:             uuid.New(),
		Email:          email,
		PasswordDigest: passwordDigest,
		Name:           name,
		Role:           schema.RoleUser,
		Profile: schema.AccountProfile{
			ID:       uuid.New(),
			Channels: schema.ChannelPreferences{},
		},
	}
	a.Profile.AccountID = a.ID

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account id
func (s *GreenEpidemicStore) GetAccount(id uuid.UUID) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccountByEmail returns an account by its login email
func (s *GreenEpidemicStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAccountProfile updates home location, channel preferences and
// messenger chat id. Nil arguments leave the current value untouched;
// clearHomeLocation removes the home address so the account stops
// being a home fan-out target.
func (s *GreenEpidemicStore) UpdateAccountProfile(id uuid.UUID, homeLocation *schema.HomeLocation, clearHomeLocation bool, channels schema.ChannelPreferences, messengerChatID *string) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("id = ?", id).First(&a).Error; err != nil {
		return err
	}

	if clearHomeLocation {
		a.Profile.HomeLocation = nil
	} else if homeLocation != nil {
		a.Profile.HomeLocation = homeLocation
	}
	if channels != nil {
		a.Profile.Channels = channels
	}
	if messengerChatID != nil {
		a.Profile.MessengerChatID = *messengerChatID
	}

	return s.ormDB.Save(&a.Profile).Error
}

// ListAccountsWithHomeLocation returns accounts that set a home
// address, each with its profile preloaded. The fan-out treats each
// home as a fixed radius watch point.
func (s *GreenEpidemicStore) ListAccountsWithHomeLocation() ([]schema.Account, error) {
	accounts := make([]schema.Account, 0)
	if err := s.ormDB.
		Preload("Profile").
		Joins("JOIN account_profiles ON account_profiles.account_id = accounts.id").
		Where("account_profiles.home_location IS NOT NULL").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetAccountsByIDs resolves a batch of account ids to accounts with
// profiles, keyed by the id string. Unknown ids are simply absent.
func (s *GreenEpidemicStore) GetAccountsByIDs(ids []string) (map[string]*schema.Account, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		parsed = append(parsed, u)
	}

	accounts := make([]schema.Account, 0)
	if err := s.ormDB.
		Preload("Profile").
		Where("id IN (?)", parsed).
		Find(&accounts).Error; err != nil {
		return nil, err
	}

	result := make(map[string]*schema.Account, len(accounts))
	for i := range accounts {
		result[accounts[i].ID.String()] = &accounts[i]
	}

	return result, nil
}
