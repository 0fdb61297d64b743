package domain

type MemberKind string

const (
	KindStudent MemberKind = "student"
	KindUser    MemberKind = "user"
)

// Member is either a Student or a User. Exactly one of the two payloads is set.
type Member struct {
	Kind    MemberKind `json:"kind"`
	Student *Student   `json:"student,omitempty"`
	User    *User      `json:"user,omitempty"`
}

func StudentMember(s Student) Member {
	return Member{Kind: KindStudent, Student: &s}
}

func UserMember(u User) Member {
	return Member{Kind: KindUser, User: &u}
}

func (m Member) Valid() bool {
	switch m.Kind {
	case KindStudent:
		return m.Student != nil && m.User == nil
	case KindUser:
		return m.User != nil && m.Student == nil
	}
	return false
}

func (m Member) ID() string {
	switch {
	case m.Student != nil:
		return m.Student.ID
	case m.User != nil:
		return m.User.ID
	}
	return ""
}

func (m Member) Name() string {
	switch {
	case m.Student != nil:
		return m.Student.Name
	case m.User != nil:
		return m.User.Name
	}
	return ""
}

func (m Member) Email() string {
	switch {
	case m.Student != nil:
		return m.Student.Email
	case m.User != nil:
		return m.User.Email
	}
	return ""
}

func (m Member) SearchFields() []string {
	switch {
	case m.Student != nil:
		return m.Student.SearchFields()
	case m.User != nil:
		return m.User.SearchFields()
	}
	return nil
}
