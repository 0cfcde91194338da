package mapper

import (
	membersdomain "github.com/storegate/backoffice/internal/domains/members/domain"
)

// Member is the transport-layer shape for members.
type Member struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// Address is the transport-layer shape for postal addresses.
type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// ToDomainMember converts a transport member into the domain model.
func ToDomainMember(member Member) (*membersdomain.Member, error) {
	domainMember, err := membersdomain.NewMember(member.Name, membersdomain.Address{
		City:    member.Address.City,
		Street:  member.Address.Street,
		Zipcode: member.Address.Zipcode,
	})
	if err != nil {
		return nil, err
	}
	domainMember.ID = member.ID
	return domainMember, nil
}

// FromDomainMember converts a domain member to the transport representation.
func FromDomainMember(member *membersdomain.Member) Member {
	if member == nil {
		return Member{}
	}
	return Member{
		ID:   member.ID,
		Name: member.Name,
		Address: Address{
			City:    member.Address.City,
			Street:  member.Address.Street,
			Zipcode: member.Address.Zipcode,
		},
	}
}

// FromDomainMembers maps a list of domain members.
func FromDomainMembers(members []*membersdomain.Member) []Member {
	result := make([]Member, 0, len(members))
	for _, member := range members {
		result = append(result, FromDomainMember(member))
	}
	return result
}
