package resolver

type loginPayload struct {
	status bool
	err    *string
	token  *string
	me     *userResolver
}

func (p *loginPayload) Status() bool      { return p.status }
func (p *loginPayload) Error() *string    { return p.err }
func (p *loginPayload) Token() *string    { return p.token }
func (p *loginPayload) Me() *userResolver { return p.me }

type userPayload struct {
	status bool
	err    *string
	user   *userResolver
}

func (p *userPayload) Status() bool        { return p.status }
func (p *userPayload) Error() *string      { return p.err }
func (p *userPayload) User() *userResolver { return p.user }

type itemPayload struct {
	status bool
	err    *string
	item   *itemResolver
}

func (p *itemPayload) Status() bool        { return p.status }
func (p *itemPayload) Error() *string      { return p.err }
func (p *itemPayload) Item() *itemResolver { return p.item }

type deletePayload struct {
	status bool
	err    *string
}

func (p *deletePayload) Status() bool   { return p.status }
func (p *deletePayload) Error() *string { return p.err }
