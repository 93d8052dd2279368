package state

import "time"

// User is the authenticated account profile. JSON tags match the persisted
// authState record.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Preferences UserPrefs `json:"preferences"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserPrefs are the per-account toggles carried on the profile.
type UserPrefs struct {
	Newsletter    bool   `json:"newsletter"`
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
}

// UserUpdate is a partial profile change; nil fields are left untouched.
type UserUpdate struct {
	Name          *string
	Avatar        *string
	Bio           *string
	Newsletter    *bool
	Notifications *bool
	Language      *string
}

// Apply merges the update into a user, returning the merged copy.
func (u UserUpdate) Apply(user User) User {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Avatar != nil {
		user.Avatar = *u.Avatar
	}
	if u.Bio != nil {
		user.Bio = *u.Bio
	}
	if u.Newsletter != nil {
		user.Preferences.Newsletter = *u.Newsletter
	}
	if u.Notifications != nil {
		user.Preferences.Notifications = *u.Notifications
	}
	if u.Language != nil {
		user.Preferences.Language = *u.Language
	}
	return user
}

// SessionState holds authentication state. Each async operation walks
// idle -> pending -> fulfilled|rejected; pending raises IsLoading and clears
// the previous error, rejection records the reason without touching User.
type SessionState struct {
	User            *User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

func defaultSession() SessionState {
	return SessionState{}
}

func reduceSession(s SessionState, action Action) SessionState {
	switch a := action.(type) {
	case SignInPending, SignUpPending, UpdateProfilePending:
		s.IsLoading = true
		s.Error = ""
	case SignInFulfilled:
		s = sessionFulfilled(s, a.User)
	case SignUpFulfilled:
		s = sessionFulfilled(s, a.User)
	case SignInRejected:
		s = sessionRejected(s, a.Reason)
	case SignUpRejected:
		s = sessionRejected(s, a.Reason)
	case UpdateProfileFulfilled:
		s.IsLoading = false
		s.Error = ""
		if s.User != nil {
			merged := a.Updates.Apply(*s.User)
			s.User = &merged
		}
	case UpdateProfileRejected:
		s = sessionRejected(s, a.Reason)
	case UpdateUserLocal:
		if s.User != nil {
			merged := a.Updates.Apply(*s.User)
			s.User = &merged
		}
	case Logout:
		s.User = nil
		s.IsAuthenticated = false
		s.Error = ""
	case ClearAuthError:
		s.Error = ""
	}
	return s
}

func sessionFulfilled(s SessionState, user User) SessionState {
	u := user
	s.User = &u
	s.IsAuthenticated = true
	s.IsLoading = false
	s.Error = ""
	return s
}

func sessionRejected(s SessionState, reason string) SessionState {
	s.IsLoading = false
	s.Error = reason
	return s
}
