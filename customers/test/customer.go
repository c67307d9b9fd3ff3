package test

import (
	"time"

	"github.com/megacare-dev/mega-care-api/customers"
	"github.com/megacare-dev/mega-care-api/test"
)

func strp(s string) *string {
	return &s
}

func floatp(f float64) *float64 {
	return &f
}

func RandomCustomer() customers.Customer {
	dob := test.Faker.Time().Time(time.Now().AddDate(-30, 0, 0)).UTC().Truncate(24 * time.Hour)
	return customers.Customer{
		Id:          test.Faker.UUID().V4(),
		LineId:      strp(test.Faker.UUID().V4()),
		DisplayName: strp(test.Faker.Person().Name()),
		FirstName:   strp(test.Faker.Person().FirstName()),
		LastName:    strp(test.Faker.Person().LastName()),
		BirthDate:   &dob,
		Location:    strp(test.Faker.Address().City()),
		Status:      strp("active"),
		LineProfile: RandomLineProfile(),
	}
}

func RandomLineProfile() *customers.LineProfile {
	return &customers.LineProfile{
		UserId:        strp(test.Faker.UUID().V4()),
		DisplayName:   strp(test.Faker.Person().Name()),
		PictureUrl:    strp(test.Faker.Internet().URL()),
		StatusMessage: strp(test.Faker.Lorem().Sentence(3)),
		Email:         strp(test.Faker.Internet().Email()),
	}
}

func RandomDevice() customers.Device {
	now := time.Now().UTC()
	return customers.Device{
		Id:           test.Faker.UUID().V4(),
		DeviceName:   strp(test.Faker.Company().Name()),
		SerialNumber: strp(test.Faker.UUID().V4()),
		DeviceNumber: strp(test.Faker.UUID().V4()),
		Status:       strp(customers.DeviceStatusActive),
		AddedDate:    &now,
	}
}

func RandomDailyReport() customers.DailyReport {
	date := test.Faker.Time().ISO8601(time.Now())[:10]
	return customers.DailyReport{
		Id:         date,
		ReportDate: strp(date),
		UsageHours: floatp(test.Faker.Float64(2, 0, 12)),
		Leak: &customers.Distribution{
			Median:       floatp(test.Faker.Float64(2, 0, 40)),
			Percentile95: floatp(test.Faker.Float64(2, 0, 60)),
		},
		Pressure: &customers.Distribution{
			Median:       floatp(test.Faker.Float64(2, 4, 20)),
			Percentile95: floatp(test.Faker.Float64(2, 4, 20)),
		},
		EventsPerHour: &customers.EventsPerHour{
			Ahi:           floatp(test.Faker.Float64(2, 0, 10)),
			CentralApneas: floatp(test.Faker.Float64(2, 0, 5)),
			Hypopneas:     floatp(test.Faker.Float64(2, 0, 5)),
		},
	}
}
