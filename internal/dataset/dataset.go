// Package dataset holds the immutable reference data describing India's Allied
// Health Professional workforce: per-category and per-state supply and demand,
// regional groupings, benchmarks, budget history and the policy catalogues.
//
// The data is loaded once from an embedded YAML document and never mutated
// afterwards, so a *Dataset may be shared freely between goroutines.
package dataset

// Category is one professional category of the AHP workforce.
type Category struct {
	Name                  string  `json:"name"`
	Current               int64   `json:"current"`
	Required              int64   `json:"required"`
	Gap                   int64   `json:"gap"`
	GapPercentage         float64 `json:"gap_percentage"`
	AvgSalary             float64 `json:"avg_salary_inr"`
	TrainingCost          float64 `json:"training_cost_inr"`
	TrainingDurationYears float64 `json:"training_duration_years"`
	AttritionRate         float64 `json:"attrition_rate"`
	Description           string  `json:"description"`
}

type State struct {
	Name                 string  `json:"name"`
	Population           int64   `json:"population"`
	CurrentAHP           int64   `json:"current_ahp"`
	RequiredAHP          int64   `json:"required_ahp"`
	Gap                  int64   `json:"gap"`
	UrbanPopulationPct   float64 `json:"urban_population_pct"`
	RuralGapPct          float64 `json:"rural_gap_pct"`
	TrainingInstitutions int64   `json:"training_institutions"`
	AnnualGraduates      int64   `json:"annual_graduates"`
	Lat                  float64 `json:"lat"`
	Lon                  float64 `json:"lon"`
	Region               string  `json:"region"`
}

type Region struct {
	Name   string   `json:"name"`
	States []string `json:"states"`
}

type UrbanRuralSegment struct {
	Segment       string  `json:"segment"`
	PopulationPct float64 `json:"population_pct"`
	AHPShare      float64 `json:"ahp_share"`
	GapShare      float64 `json:"gap_share"`
	DensityPer10K float64 `json:"density_per_10k"`
}

type AgeGroup struct {
	Group               string  `json:"group"`
	PopulationPct       float64 `json:"population_pct"`
	HealthcareNeedIndex float64 `json:"healthcare_need_index"`
}

type SocioeconomicGroup struct {
	Group          string  `json:"group"`
	PopulationPct  float64 `json:"population_pct"`
	AHPAccessPct   float64 `json:"ahp_access_pct"`
	OutOfPocketPct float64 `json:"out_of_pocket_pct"`
}

type Demographics struct {
	UrbanRural    []UrbanRuralSegment  `json:"urban_rural"`
	AgeGroups     []AgeGroup           `json:"age_groups"`
	Socioeconomic []SocioeconomicGroup `json:"socioeconomic"`
}

type WHOBenchmark struct {
	Metric       string  `json:"metric"`
	WHOTarget    float64 `json:"who_target"`
	IndiaCurrent float64 `json:"india_current"`
	GapPct       float64 `json:"gap_pct"`
}

// TrainingInfrastructure describes national training throughput. AnnualSeats
// times UtilizationRate is the production capacity used by the trajectories.
type TrainingInfrastructure struct {
	TotalInstitutions     int64   `json:"total_institutions"`
	NursingColleges       int64   `json:"nursing_colleges"`
	ParamedicalInstitutes int64   `json:"paramedical_institutes"`
	AnnualSeats           int64   `json:"annual_seats"`
	UtilizationRate       float64 `json:"utilization_rate"`
	QualityAccreditedPct  float64 `json:"quality_accredited_pct"`
	FacultyShortagePct    float64 `json:"faculty_shortage_pct"`
	InfrastructureGapPct  float64 `json:"infrastructure_gap_pct"`
}

type CurrentFunding struct {
	CentralBudgetHealthCr      float64 `json:"central_budget_health_cr"`
	StateBudgetsTotalCr        float64 `json:"state_budgets_total_cr"`
	NHMAllocationCr            float64 `json:"nhm_allocation_cr"`
	AyushmanBharatCr           float64 `json:"ayushman_bharat_cr"`
	HumanResourceDevelopmentCr float64 `json:"human_resource_development_cr"`
	TrainingInfrastructureCr   float64 `json:"training_infrastructure_cr"`
}

type BudgetYear struct {
	FinancialYear   string  `json:"financial_year"`
	HealthBudgetCr  float64 `json:"health_budget_cr"`
	TotalBudgetCr   float64 `json:"total_budget_cr"`
	GDPLakhCr       float64 `json:"gdp_lakh_cr"`
	HealthPctGDP    float64 `json:"health_pct_gdp"`
	HealthPctBudget float64 `json:"health_pct_budget"`
}

type CountrySpending struct {
	Country          string  `json:"country"`
	HealthPctGDP     float64 `json:"health_pct_gdp"`
	GovtHealthPctGDP float64 `json:"govt_health_pct_gdp"`
	OutOfPocketPct   float64 `json:"out_of_pocket_pct"`
}

type FundingSource struct {
	Source            string  `json:"source"`
	PotentialAnnualCr float64 `json:"potential_annual_cr"`
	CurrentAnnualCr   float64 `json:"current_annual_cr"`
	Feasibility       string  `json:"feasibility"`
	Mechanism         string  `json:"mechanism"`
	Timeline          string  `json:"timeline"`
	Requirements      string  `json:"requirements"`
}

type Strategy struct {
	Name                    string   `json:"name"`
	Description             string   `json:"description"`
	TargetProfessionals     int64    `json:"target_professionals"`
	CostCrAnnual            float64  `json:"cost_cr_annual"`
	ImplementationLocations []string `json:"implementation_locations"`
	ExpectedImpact          string   `json:"expected_impact"`
	GapReductionPct         float64  `json:"gap_reduction_pct"`
	KeyActions              []string `json:"key_actions"`
	SuccessMetrics          []string `json:"success_metrics"`
}

// StrategyPhase groups strategies under a portfolio phase such as "immediate".
type StrategyPhase struct {
	Key         string     `json:"key"`
	Phase       string     `json:"phase"`
	Description string     `json:"description"`
	Strategies  []Strategy `json:"strategies"`
}

type DataSource struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Year      int    `json:"year"`
	URL       string `json:"url"`
	DataUsed  string `json:"data_used"`
}

// Dataset is the complete reference data set. TotalGap is the national
// normalisation constant; it is not derived from the category table.
type Dataset struct {
	TotalGap               int64                  `json:"total_gap"`
	Categories             []Category             `json:"categories"`
	States                 []State                `json:"states"`
	Regions                []Region               `json:"regions"`
	Demographics           Demographics           `json:"demographics"`
	WHOBenchmarks          []WHOBenchmark         `json:"who_benchmarks"`
	TrainingInfrastructure TrainingInfrastructure `json:"training_infrastructure"`
	CurrentFunding         CurrentFunding         `json:"current_funding"`
	BudgetTrend            []BudgetYear           `json:"budget_trend"`
	GlobalComparison       []CountrySpending      `json:"global_comparison"`
	FundingSources         []FundingSource        `json:"funding_sources"`
	StrategyPortfolio      []StrategyPhase        `json:"strategy_portfolio"`
	DataSources            []DataSource           `json:"data_sources"`
}

// CategoryGapSum returns the sum of all category gaps. It is intentionally
// different from TotalGap for the bundled data.
func (d *Dataset) CategoryGapSum() int64 {
	var sum int64
	for _, c := range d.Categories {
		sum += c.Gap
	}
	return sum
}

// State returns the named state and whether it exists.
func (d *Dataset) State(name string) (State, bool) {
	for _, s := range d.States {
		if s.Name == name {
			return s, true
		}
	}
	return State{}, false
}

// Category returns the named category and whether it exists.
func (d *Dataset) Category(name string) (Category, bool) {
	for _, c := range d.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
