package store

import (
	"time"

	"toxmanager/internal/core/roster"
)

// SeedRoster returns the demo roster the dashboard ships with
func SeedRoster() []roster.Employee {
	e := func(id, reg, name string, g roster.Gender, dept string, st roster.Status, last string) roster.Employee {
		return roster.Employee{ID: id, RegistrationNumber: reg, Name: name, Gender: g, Department: dept, Status: st, LastExamDate: last}
	}
	m, f := roster.GenderMale, roster.GenderFemale
	return []roster.Employee{
		e("1", "4521", "Carlos Mendes", m, "Logística", roster.StatusActive, "12/08/2023"),
		e("2", "3320", "Juliana Paes", f, "RH", roster.StatusOnLeave, "05/09/2023"),
		e("3", "8912", "Roberto Firmino", m, "Produção", roster.StatusPending, "10/01/2023"),
		e("4", "1290", "Ana Souza", f, "Qualidade", roster.StatusActive, "22/10/2023"),
		e("5", "5678", "Marcos Silva", m, "TI", roster.StatusSuspended, "15/05/2023"),
		e("6", "9988", "Patricia Lima", f, "Vendas", roster.StatusActive, "01/11/2023"),
		e("7", "2231", "Lucas Oliveira", m, "Logística", roster.StatusActive, "14/09/2023"),
		e("8", "7765", "Fernanda Costa", f, "Produção", roster.StatusPending, "30/08/2023"),
		e("9", "1122", "Ricardo Santos", m, "Manutenção", roster.StatusActive, "10/02/2023"),
		e("10", "3344", "Camila Rocha", f, "RH", roster.StatusActive, "15/03/2023"),
		e("11", "5566", "Paulo Dias", m, "Produção", roster.StatusActive, "20/04/2023"),
		e("12", "7788", "Beatriz Melo", f, "Vendas", roster.StatusPending, "05/01/2023"),
	}
}

// Seed returns stores filled with the demo roster and inbox
func Seed(opts ...Option) *Store {
	o := build(opts)
	s := New(opts...)
	s.Roster = NewRoster(SeedRoster()...)

	now := o.now().UTC()
	for _, n := range []Notification{
		{ID: "1", Kind: KindWarning, Title: "Prazo de Exame Expirando",
			Description: "O colaborador Carlos Mendes (Mat: 4521) tem exames vencendo em 5 dias.",
			CreatedAt:   now.Add(-2 * time.Hour)},
		{ID: "2", Kind: KindSuccess, Title: "Sorteio Mensal Realizado",
			Description: "O sorteio de exames toxicológicos de Outubro foi processado com sucesso. 5 colaboradores selecionados.",
			CreatedAt:   now.Add(-24 * time.Hour)},
		{ID: "3", Kind: KindInfo, Title: "Backup do Sistema",
			Description: "O backup automático dos dados foi concluído sem erros.",
			CreatedAt:   now.Add(-48 * time.Hour), Read: true},
		{ID: "4", Kind: KindInfo, Title: "Atualização de Política",
			Description: "A nova política de segurança do trabalho foi publicada na intranet.",
			CreatedAt:   now.Add(-72 * time.Hour), Read: true},
	} {
		s.Notifications.restore(n)
	}
	return s
}
