package types

type Team struct {
	FullId       string `json:"fullId"`
	Name         string `json:"name"`
	Tag          string `json:"tag"`
	Status       string `json:"status"`
	CreateDate   int64  `json:"createDate"`
	LastGameDate int64  `json:"lastGameDate"`
	Roster       Roster `json:"roster"`
}

type Roster struct {
	OwnerId    int64            `json:"ownerId"`
	MemberList []TeamMemberInfo `json:"memberList"`
}

type TeamMemberInfo struct {
	PlayerId   int64  `json:"playerId"`
	Status     string `json:"status"`
	JoinDate   int64  `json:"joinDate"`
	InviteDate int64  `json:"inviteDate"`
}
