package http

import (
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session"
)

type identityResp struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

type sessionResp struct {
	State    session.State `json:"state"`
	Identity *identityResp `json:"identity,omitempty"`
	Token    string        `json:"token,omitempty"`
}

func (h *handler) newSessionResp() sessionResp {
	state, identity := h.gate.State()
	resp := sessionResp{
		State: state,
		Token: h.provider.Token(),
	}
	if identity != nil {
		resp.Identity = &identityResp{UID: identity.UID, Email: identity.Email}
	}
	return resp
}

func (h *handler) newSignedInResp(identity model.Identity) sessionResp {
	return sessionResp{
		State:    session.StateAuthenticated,
		Identity: &identityResp{UID: identity.UID, Email: identity.Email},
		Token:    h.provider.Token(),
	}
}
