package choices

// Sex values shared by cows, users and inseminators.
const (
	SexMale   = "Male"
	SexFemale = "Female"
)

var SexChoices = []string{SexMale, SexFemale}

// Cow breed names accepted by the farm.
const (
	BreedFriesian   = "Friesian"
	BreedSahiwal    = "Sahiwal"
	BreedJersey     = "Jersey"
	BreedGuernsey   = "Guernsey"
	BreedCrossbreed = "Crossbreed"
	BreedAyrshire   = "Ayrshire"
)

var CowBreedChoices = []string{
	BreedFriesian,
	BreedSahiwal,
	BreedJersey,
	BreedGuernsey,
	BreedCrossbreed,
	BreedAyrshire,
}

// Availability status of a cow on the farm.
const (
	CowAvailabilityAlive = "Alive"
	CowAvailabilitySold  = "Sold"
	CowAvailabilityDead  = "Dead"
)

var CowAvailabilityChoices = []string{
	CowAvailabilityAlive,
	CowAvailabilitySold,
	CowAvailabilityDead,
}

// Pregnancy status carried on the cow itself.
const (
	CowPregnancyOpen        = "Open"
	CowPregnancyPregnant    = "Pregnant"
	CowPregnancyCalved      = "Calved"
	CowPregnancyUnavailable = "Unavailable"
)

var CowPregnancyChoices = []string{
	CowPregnancyOpen,
	CowPregnancyPregnant,
	CowPregnancyCalved,
	CowPregnancyUnavailable,
}

// Category of a cow.
const (
	CowCategoryCalf       = "Calf"
	CowCategoryWeaner     = "Weaner"
	CowCategoryHeifer     = "Heifer"
	CowCategoryBull       = "Bull"
	CowCategoryMilkingCow = "Milking Cow"
)

var CowCategoryChoices = []string{
	CowCategoryCalf,
	CowCategoryWeaner,
	CowCategoryHeifer,
	CowCategoryBull,
	CowCategoryMilkingCow,
}

// Production status of a cow.
const (
	ProductionStatusOpen                 = "Open"
	ProductionStatusPregnantNotLactating = "Pregnant not Lactating"
	ProductionStatusPregnantAndLactating = "Pregnant and Lactating"
	ProductionStatusDry                  = "Dry"
	ProductionStatusCulled               = "Culled"
	ProductionStatusQuarantined          = "Quarantined"
	ProductionStatusBull                 = "Bull"
	ProductionStatusYoungBull            = "Young Bull"
	ProductionStatusYoungHeifer          = "Young Heifer"
	ProductionStatusMatureBull           = "Mature Bull"
	ProductionStatusCalf                 = "Calf"
	ProductionStatusWeaner               = "Weaner"
)

var CowProductionStatusChoices = []string{
	ProductionStatusOpen,
	ProductionStatusPregnantNotLactating,
	ProductionStatusPregnantAndLactating,
	ProductionStatusDry,
	ProductionStatusCulled,
	ProductionStatusQuarantined,
	ProductionStatusBull,
	ProductionStatusYoungBull,
	ProductionStatusYoungHeifer,
	ProductionStatusMatureBull,
	ProductionStatusCalf,
	ProductionStatusWeaner,
}

// Production statuses that make sense for each sex. Used when a cow is
// created or its status changes.
var MaleProductionStatuses = []string{
	ProductionStatusCalf,
	ProductionStatusWeaner,
	ProductionStatusYoungBull,
	ProductionStatusBull,
	ProductionStatusMatureBull,
	ProductionStatusCulled,
	ProductionStatusQuarantined,
}

var FemaleProductionStatuses = []string{
	ProductionStatusCalf,
	ProductionStatusWeaner,
	ProductionStatusYoungHeifer,
	ProductionStatusOpen,
	ProductionStatusPregnantNotLactating,
	ProductionStatusPregnantAndLactating,
	ProductionStatusDry,
	ProductionStatusCulled,
	ProductionStatusQuarantined,
}

// Reasons for culling a cow, grouped the way the farm reports them.
const (
	// medical
	CullingReasonInjuries      = "Injuries"
	CullingReasonChronicHealth = "Chronic Health Issues"

	// financial
	CullingReasonCostOfCare      = "Cost Of Care"
	CullingReasonUnprofitable    = "Unprofitable"
	CullingReasonLowMarketDemand = "Low Market Demand"

	// production
	CullingReasonAge                       = "Age"
	CullingReasonConsistentLowProduction   = "Consistent Low Production"
	CullingReasonConsistentPoorQuality     = "Low Quality"
	CullingReasonInefficientFeedConversion = "Inefficient Feed Conversion"

	// genetic
	CullingReasonInheritedDiseases = "Inherited Diseases"
	CullingReasonInbreeding        = "Inbreeding"
	CullingReasonUnwantedTraits    = "Unwanted Traits"

	// environmental
	CullingReasonClimateChange   = "Climate Change"
	CullingReasonNaturalDisaster = "Natural Disaster"
	CullingReasonOverpopulation  = "Overpopulation"

	// legal
	CullingReasonGovernmentRegulations     = "Government Regulations"
	CullingReasonAnimalWelfareStandards    = "Animal Welfare Standards"
	CullingReasonEnvironmentProtectionLaws = "Environmental Protection Laws"
)

var CullingReasonChoices = []string{
	CullingReasonInjuries,
	CullingReasonChronicHealth,
	CullingReasonCostOfCare,
	CullingReasonUnprofitable,
	CullingReasonLowMarketDemand,
	CullingReasonAge,
	CullingReasonConsistentLowProduction,
	CullingReasonConsistentPoorQuality,
	CullingReasonInefficientFeedConversion,
	CullingReasonInheritedDiseases,
	CullingReasonInbreeding,
	CullingReasonUnwantedTraits,
	CullingReasonClimateChange,
	CullingReasonNaturalDisaster,
	CullingReasonOverpopulation,
	CullingReasonGovernmentRegulations,
	CullingReasonAnimalWelfareStandards,
	CullingReasonEnvironmentProtectionLaws,
}

// Reasons for placing a cow in quarantine.
const (
	QuarantineReasonSickCow   = "Sick Cow"
	QuarantineReasonBoughtCow = "Bought Cow"
	QuarantineReasonNewCow    = "New Cow"
	QuarantineReasonCalving   = "Calving"
)

var QuarantineReasonChoices = []string{
	QuarantineReasonSickCow,
	QuarantineReasonBoughtCow,
	QuarantineReasonNewCow,
	QuarantineReasonCalving,
}

// Pathogen types.
const (
	PathogenBacteria = "Bacteria"
	PathogenVirus    = "Virus"
	PathogenFungi    = "Fungi"
	PathogenUnknown  = "Unknown"
)

var PathogenChoices = []string{
	PathogenBacteria,
	PathogenVirus,
	PathogenFungi,
	PathogenUnknown,
}

// Disease categories.
const (
	DiseaseCategoryNutrition     = "Nutrition"
	DiseaseCategoryInfectious    = "Infectious"
	DiseaseCategoryPhysiological = "Physiological"
	DiseaseCategoryGenetic       = "Genetic"
)

var DiseaseCategoryChoices = []string{
	DiseaseCategoryNutrition,
	DiseaseCategoryInfectious,
	DiseaseCategoryPhysiological,
	DiseaseCategoryGenetic,
}

// Status of an individual pregnancy record.
const (
	PregnancyStatusConfirmed   = "Confirmed"
	PregnancyStatusUnconfirmed = "Unconfirmed"
	PregnancyStatusFailed      = "Failed"
)

var PregnancyStatusChoices = []string{
	PregnancyStatusConfirmed,
	PregnancyStatusUnconfirmed,
	PregnancyStatusFailed,
}

// Outcome of a pregnancy.
const (
	PregnancyOutcomeLive        = "Live"
	PregnancyOutcomeStillborn   = "Stillborn"
	PregnancyOutcomeMiscarriage = "Miscarriage"
)

var PregnancyOutcomeChoices = []string{
	PregnancyOutcomeLive,
	PregnancyOutcomeStillborn,
	PregnancyOutcomeMiscarriage,
}

// Lactation stages derived from days in lactation.
const (
	LactationStageEarly = "Early"
	LactationStageMid   = "Mid"
	LactationStageLate  = "Late"
	LactationStageDry   = "Dry"
	LactationStageEnded = "Ended"
)

// Farm staff roles.
const (
	RoleFarmOwner            = "Farm Owner"
	RoleFarmManager          = "Farm Manager"
	RoleAssistantFarmManager = "Assistant Farm Manager"
	RoleTeamLeader           = "Team Leader"
	RoleFarmWorker           = "Farm Worker"
)

var FarmRoleChoices = []string{
	RoleFarmOwner,
	RoleFarmManager,
	RoleAssistantFarmManager,
	RoleTeamLeader,
	RoleFarmWorker,
}

// Contains reports whether value is one of choices.
func Contains(choices []string, value string) bool {
	for _, c := range choices {
		if c == value {
			return true
		}
	}
	return false
}
