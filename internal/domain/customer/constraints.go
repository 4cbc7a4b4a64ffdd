package customer

import "github.com/clientes/backend/internal/domain/shared"

// ProfileConstraints validates the client-editable customer fields.
var ProfileConstraints = shared.ConstraintTable{
	{Field: "name", Rules: "required,max=100"},
	{Field: "surname", Rules: "required,max=100"},
	{Field: "email", Rules: "required,max=100,email"},
	{Field: "cpf", Rules: "required,len=11,digits"},
	{Field: "phone", Rules: "required,min=10,max=15,phone"},
	{Field: "birth_date", Rules: "required,notfuture"},
}

// AddressConstraints validates address fields.
var AddressConstraints = shared.ConstraintTable{
	{Field: "street", Rules: "required,max=100"},
	{Field: "number", Rules: "required,max=10"},
	{Field: "complement", Rules: "omitempty,max=50"},
	{Field: "district", Rules: "required,max=50"},
	{Field: "city", Rules: "required,max=50"},
	{Field: "state", Rules: "required,len=2,uf"},
	{Field: "postal_code", Rules: "required,min=8,max=9,cep"},
}
