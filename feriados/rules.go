// Package feriados implements the Brazilian public holiday engine.
// It uses the generic calendar primitives with Brazil-specific rule tables.
package feriados

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// =============================================================================
// RULE TYPES
// =============================================================================

// FixedRule is a national holiday on the same month/day every year.
// Since is the first year the holiday exists (0 = always).
type FixedRule struct {
	Month time.Month
	Day   int
	Name  string
	Since int
}

// MovableRule is a holiday anchored to Easter Sunday by a signed day offset.
type MovableRule struct {
	Offset int
	Name   string
	Type   generic.HolidayType
}

// StateRule is a holiday scoped to one federation unit.
type StateRule struct {
	State string
	Month time.Month
	Day   int
	Name  string
	Since int
}

// appliesIn is the effective-year guard shared by fixed and state rules.
func appliesIn(since, year int) bool {
	return since == 0 || year >= since
}

func (r FixedRule) AppliesIn(year int) bool { return appliesIn(r.Since, year) }
func (r StateRule) AppliesIn(year int) bool { return appliesIn(r.Since, year) }

// RuleSet groups the three rule tables the engine evaluates. State rules are
// indexed by lower-case state code.
type RuleSet struct {
	Fixed   []FixedRule
	Movable []MovableRule
	States  map[string][]StateRule
}

// NewRuleSet indexes state rules by their State code.
func NewRuleSet(fixed []FixedRule, movable []MovableRule, state []StateRule) RuleSet {
	states := make(map[string][]StateRule)
	for _, r := range state {
		states[r.State] = append(states[r.State], r)
	}
	return RuleSet{Fixed: fixed, Movable: movable, States: states}
}

// =============================================================================
// BRAZILIAN RULE TABLES
// =============================================================================
// Built once at package init and only read afterwards.

var fixedHolidays = []FixedRule{
	{Month: time.January, Day: 1, Name: "Confraternização mundial"},
	{Month: time.April, Day: 21, Name: "Tiradentes"},
	{Month: time.May, Day: 1, Name: "Dia do trabalho"},
	{Month: time.September, Day: 7, Name: "Independência do Brasil"},
	{Month: time.October, Day: 12, Name: "Nossa Senhora Aparecida"},
	{Month: time.November, Day: 2, Name: "Finados"},
	{Month: time.November, Day: 15, Name: "Proclamação da República"},
	{Month: time.November, Day: 20, Name: "Dia da consciência negra", Since: 2024}, // Lei 14.759/2023
	{Month: time.December, Day: 25, Name: "Natal"},
}

var movableHolidays = []MovableRule{
	{Offset: -47, Name: "Carnaval", Type: generic.TypeNational},
	{Offset: -2, Name: "Sexta-feira Santa", Type: generic.TypeNational},
	{Offset: 0, Name: "Páscoa", Type: generic.TypeNational},
	{Offset: 60, Name: "Corpus Christi", Type: generic.TypeNational},
}

var stateHolidays = []StateRule{
	{State: "ac", Month: time.January, Day: 23, Name: "Dia do evangélico"},
	{State: "ac", Month: time.June, Day: 15, Name: "Aniversário do Acre"},
	{State: "ac", Month: time.September, Day: 5, Name: "Dia da Amazônia"},
	{State: "ac", Month: time.November, Day: 17, Name: "Assinatura do Tratado de Petrópolis"},

	{State: "al", Month: time.June, Day: 24, Name: "São João"},
	{State: "al", Month: time.June, Day: 29, Name: "São Pedro"},
	{State: "al", Month: time.September, Day: 16, Name: "Emancipação política de Alagoas"},
	{State: "al", Month: time.November, Day: 30, Name: "Dia do evangélico"},

	{State: "am", Month: time.September, Day: 5, Name: "Elevação do Amazonas à categoria de província"},

	{State: "ap", Month: time.March, Day: 19, Name: "Dia de São José"},
	{State: "ap", Month: time.September, Day: 13, Name: "Criação do Território Federal do Amapá"},

	{State: "ba", Month: time.July, Day: 2, Name: "Independência da Bahia"},

	{State: "ce", Month: time.March, Day: 19, Name: "Dia de São José"},
	{State: "ce", Month: time.March, Day: 25, Name: "Data Magna do Ceará"},

	{State: "df", Month: time.April, Day: 21, Name: "Fundação de Brasília"},
	{State: "df", Month: time.November, Day: 30, Name: "Dia do evangélico"},

	{State: "es", Month: time.October, Day: 28, Name: "Dia do servidor público"},

	{State: "go", Month: time.October, Day: 28, Name: "Dia do servidor público"},

	{State: "ma", Month: time.July, Day: 28, Name: "Adesão do Maranhão à independência do Brasil"},

	{State: "mg", Month: time.April, Day: 21, Name: "Data Magna de Minas Gerais"},

	{State: "ms", Month: time.October, Day: 11, Name: "Criação do estado de Mato Grosso do Sul"},

	{State: "mt", Month: time.November, Day: 20, Name: "Dia da consciência negra"},

	{State: "pa", Month: time.August, Day: 15, Name: "Adesão do Grão-Pará à independência do Brasil"},

	{State: "pb", Month: time.August, Day: 5, Name: "Fundação do Estado da Paraíba"},

	{State: "pe", Month: time.March, Day: 6, Name: "Revolução Pernambucana"},

	{State: "pi", Month: time.October, Day: 19, Name: "Dia do Piauí"},

	{State: "pr", Month: time.December, Day: 19, Name: "Emancipação política do Paraná"},

	{State: "rj", Month: time.April, Day: 23, Name: "Dia de São Jorge"},
	{State: "rj", Month: time.November, Day: 20, Name: "Dia da consciência negra"},

	{State: "rn", Month: time.October, Day: 3, Name: "Mártires de Cunhaú e Uruaçu"},

	{State: "ro", Month: time.January, Day: 4, Name: "Criação do estado de Rondônia"},
	{State: "ro", Month: time.June, Day: 18, Name: "Dia do evangélico"},

	{State: "rr", Month: time.October, Day: 5, Name: "Criação do estado de Roraima"},

	{State: "rs", Month: time.September, Day: 20, Name: "Revolução Farroupilha"},

	{State: "sc", Month: time.August, Day: 11, Name: "Data Magna de Santa Catarina"},

	{State: "se", Month: time.July, Day: 8, Name: "Emancipação política de Sergipe"},

	{State: "sp", Month: time.July, Day: 9, Name: "Revolução Constitucionalista de 1932"},

	{State: "to", Month: time.March, Day: 18, Name: "Autonomia do Tocantins"},
	{State: "to", Month: time.September, Day: 8, Name: "Nossa Senhora da Natividade"},
	{State: "to", Month: time.October, Day: 5, Name: "Criação do estado do Tocantins"},
}

// brazil is the compiled-in rule set for national and state holidays.
var brazil = NewRuleSet(fixedHolidays, movableHolidays, stateHolidays)
