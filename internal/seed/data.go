package seed

import (
	"time"

	"finance-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Placeholder data for provisioning a demo database.

type seedUser struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string // clear text here, hashed before insert
}

var users = []seedUser{
	{
		ID:       uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"),
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var customers = []models.Customer{
	{
		ID:       uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"),
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a"),
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a"),
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2"),
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9"),
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb"),
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

type seedInvoice struct {
	CustomerIndex int
	AmountCents   int64
	Status        string
	Date          string
}

var invoices = []seedInvoice{
	{CustomerIndex: 0, AmountCents: 15795, Status: models.StatusPending, Date: "2022-12-06"},
	{CustomerIndex: 1, AmountCents: 20348, Status: models.StatusPending, Date: "2022-11-14"},
	{CustomerIndex: 4, AmountCents: 3040, Status: models.StatusPaid, Date: "2022-10-29"},
	{CustomerIndex: 3, AmountCents: 44800, Status: models.StatusPaid, Date: "2023-09-10"},
	{CustomerIndex: 5, AmountCents: 34577, Status: models.StatusPending, Date: "2023-08-05"},
	{CustomerIndex: 2, AmountCents: 54246, Status: models.StatusPending, Date: "2023-07-16"},
	{CustomerIndex: 0, AmountCents: 66600, Status: models.StatusPending, Date: "2023-06-27"},
	{CustomerIndex: 3, AmountCents: 32545, Status: models.StatusPaid, Date: "2023-06-09"},
	{CustomerIndex: 4, AmountCents: 1250, Status: models.StatusPaid, Date: "2023-06-17"},
	{CustomerIndex: 5, AmountCents: 8546, Status: models.StatusPaid, Date: "2023-06-07"},
	{CustomerIndex: 1, AmountCents: 50000, Status: models.StatusPaid, Date: "2023-08-19"},
	{CustomerIndex: 5, AmountCents: 8945, Status: models.StatusPaid, Date: "2023-06-03"},
	{CustomerIndex: 2, AmountCents: 1000, Status: models.StatusPaid, Date: "2022-06-05"},
}

var revenues = []models.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

func mustDate(s string) datatypes.Date {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return datatypes.Date(d)
}
