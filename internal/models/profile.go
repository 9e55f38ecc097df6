package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ProfileAttributeType string

const (
	AttributeName          ProfileAttributeType = "name"
	AttributeGender        ProfileAttributeType = "gender"
	AttributeBirthDate     ProfileAttributeType = "birthDate"
	AttributeNotifications ProfileAttributeType = "notificationsEnabled"
	AttributeCustomString  ProfileAttributeType = "customString"
	AttributeCustomNumber  ProfileAttributeType = "customNumber"
	AttributeCustomBoolean ProfileAttributeType = "customBoolean"
	AttributeCustomCounter ProfileAttributeType = "customCounter"
)

// UserProfileUpdate is one attribute change. Reset clears the attribute
// and ignores Value; IfUndefined only applies the value when unset.
type UserProfileUpdate struct {
	Type        ProfileAttributeType `json:"type"`
	Key         string               `json:"key,omitempty"`
	Value       any                  `json:"value,omitempty"`
	Reset       bool                 `json:"reset,omitempty"`
	IfUndefined bool                 `json:"ifUndefined,omitempty"`
}

type UserProfile struct {
	Updates []UserProfileUpdate `json:"attributes"`
}

func (p *UserProfile) Apply(u UserProfileUpdate) *UserProfile {
	p.Updates = append(p.Updates, u)
	return p
}

type DeferredDeeplinkError string

const (
	DeeplinkNotAFirstLaunch DeferredDeeplinkError = "NOT_A_FIRST_LAUNCH"
	DeeplinkParseError      DeferredDeeplinkError = "PARSE_ERROR"
	DeeplinkUnknown         DeferredDeeplinkError = "UNKNOWN"
	DeeplinkNoReferrer      DeferredDeeplinkError = "NO_REFERRER"
)

type DeferredDeeplinkListener struct {
	OnSuccess func(deeplink string)
	OnFailure func(err DeferredDeeplinkError, referrer string)
}

type DeferredDeeplinkParametersListener struct {
	OnSuccess func(params map[string]string)
	OnFailure func(err DeferredDeeplinkError, referrer string)
}
