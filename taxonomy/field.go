package taxonomy

const (
	fieldComputing uint16 = iota
	fieldMedicine
	fieldLaw
	fieldBusiness
	fieldMilitary
	fieldBiology
	fieldChemistry
	fieldMathematics
	fieldPhysics
	fieldLinguistics
	fieldMusic
	fieldSports
	fieldFoodTerm
	fieldBuddhism
	fieldShinto
	fieldBaseball
	fieldFinance
	fieldGeology
	fieldBotany
	fieldZoology
)

var (
	FieldComputing    = Entity{CategoryField, define(CategoryField, fieldComputing, "comp", "computing")}
	FieldMedicine     = Entity{CategoryField, define(CategoryField, fieldMedicine, "med", "medicine")}
	FieldLaw          = Entity{CategoryField, define(CategoryField, fieldLaw, "law", "law")}
	FieldBusiness     = Entity{CategoryField, define(CategoryField, fieldBusiness, "bus", "business")}
	FieldMilitary     = Entity{CategoryField, define(CategoryField, fieldMilitary, "mil", "military")}
	FieldBiology      = Entity{CategoryField, define(CategoryField, fieldBiology, "biol", "biology")}
	FieldChemistry    = Entity{CategoryField, define(CategoryField, fieldChemistry, "chem", "chemistry")}
	FieldMathematics  = Entity{CategoryField, define(CategoryField, fieldMathematics, "math", "mathematics")}
	FieldPhysics      = Entity{CategoryField, define(CategoryField, fieldPhysics, "physics", "physics")}
	FieldLinguistics  = Entity{CategoryField, define(CategoryField, fieldLinguistics, "ling", "linguistics")}
	FieldMusic        = Entity{CategoryField, define(CategoryField, fieldMusic, "music", "music")}
	FieldSports       = Entity{CategoryField, define(CategoryField, fieldSports, "sports", "sports")}
	FieldFoodTerm     = Entity{CategoryField, define(CategoryField, fieldFoodTerm, "food", "food, cooking")}
	FieldBuddhism     = Entity{CategoryField, define(CategoryField, fieldBuddhism, "Buddh", "Buddhism")}
	FieldShinto       = Entity{CategoryField, define(CategoryField, fieldShinto, "Shinto", "Shinto")}
	FieldBaseball     = Entity{CategoryField, define(CategoryField, fieldBaseball, "baseb", "baseball")}
	FieldFinance      = Entity{CategoryField, define(CategoryField, fieldFinance, "finc", "finance")}
	FieldGeology      = Entity{CategoryField, define(CategoryField, fieldGeology, "geol", "geology")}
	FieldBotany       = Entity{CategoryField, define(CategoryField, fieldBotany, "bot", "botany")}
	FieldZoology      = Entity{CategoryField, define(CategoryField, fieldZoology, "zool", "zoology")}
)
