package taxonomy

const (
	nameTypeSurname uint16 = iota
	nameTypePlace
	nameTypeUnclassified
	nameTypeCompany
	nameTypeProduct
	nameTypeFemaleGivenName
	nameTypeMaleGivenName
	nameTypeGivenName
	nameTypeFullName
	nameTypeOrganization
	nameTypeStation
	nameTypeWork
	nameTypePerson
)

var (
	NameTypeSurname         = Entity{CategoryNameType, define(CategoryNameType, nameTypeSurname, "surname", "family or surname")}
	NameTypePlace           = Entity{CategoryNameType, define(CategoryNameType, nameTypePlace, "place", "place name")}
	NameTypeUnclassified    = Entity{CategoryNameType, define(CategoryNameType, nameTypeUnclassified, "unclass", "unclassified name")}
	NameTypeCompany         = Entity{CategoryNameType, define(CategoryNameType, nameTypeCompany, "company", "company name")}
	NameTypeProduct         = Entity{CategoryNameType, define(CategoryNameType, nameTypeProduct, "product", "product name")}
	NameTypeFemaleGivenName = Entity{CategoryNameType, define(CategoryNameType, nameTypeFemaleGivenName, "fem", "female given name or forename")}
	NameTypeMaleGivenName   = Entity{CategoryNameType, define(CategoryNameType, nameTypeMaleGivenName, "masc", "male given name or forename")}
	NameTypeGivenName       = Entity{CategoryNameType, define(CategoryNameType, nameTypeGivenName, "given", "given name or forename, gender not specified")}
	NameTypeFullName        = Entity{CategoryNameType, define(CategoryNameType, nameTypeFullName, "fullname", "full name of a particular person")}
	NameTypeOrganization    = Entity{CategoryNameType, define(CategoryNameType, nameTypeOrganization, "organization", "organization name")}
	NameTypeStation         = Entity{CategoryNameType, define(CategoryNameType, nameTypeStation, "station", "railway station")}
	NameTypeWork            = Entity{CategoryNameType, define(CategoryNameType, nameTypeWork, "work", "work of art, literature, music, etc. name")}
	NameTypePerson          = Entity{CategoryNameType, define(CategoryNameType, nameTypePerson, "person", "full name of a particular person")}
)
