package customers_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/megacare-dev/mega-care-api/customers"
	customersTest "github.com/megacare-dev/mega-care-api/customers/test"
	internalErrs "github.com/megacare-dev/mega-care-api/errors"
)

var _ = Describe("Customers Service", func() {
	var service customers.Service
	var repo *customersTest.MockRepository
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repo = customersTest.NewMockRepository(ctrl)

		var err error
		service, err = customers.NewService(repo, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Get", func() {
		It("maps a missing profile to a not found error", func() {
			repo.EXPECT().
				Get(gomock.Any(), "U1").
				Return(nil, customers.ErrNotFound)

			customer, err := service.Get(context.Background(), "U1")
			Expect(customer).To(BeNil())
			Expect(errors.Is(err, internalErrs.NotFound)).To(BeTrue())
		})
	})

	Describe("Create", func() {
		var customer customers.Customer

		BeforeEach(func() {
			customer = customersTest.RandomCustomer()
		})

		It("creates the customer in the repository", func() {
			repo.EXPECT().
				Create(gomock.Any(), gomock.Eq(customer)).
				Return(&customer, nil)

			created, err := service.Create(context.Background(), customer)
			Expect(err).ToNot(HaveOccurred())
			Expect(created).To(Equal(&customer))
		})

		It("rejects a profile without required fields", func() {
			customer.BirthDate = nil

			created, err := service.Create(context.Background(), customer)
			Expect(created).To(BeNil())
			Expect(errors.Is(err, internalErrs.ConstraintViolation)).To(BeTrue())
		})

		It("returns a conflict when the profile already exists", func() {
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(nil, customers.ErrDuplicate)

			created, err := service.Create(context.Background(), customer)
			Expect(created).To(BeNil())
			Expect(errors.Is(err, internalErrs.Conflict)).To(BeTrue())
		})
	})

	Describe("AddDevice", func() {
		It("requires a serial number", func() {
			device, err := service.AddDevice(context.Background(), "U1", customers.Device{})
			Expect(device).To(BeNil())
			Expect(errors.Is(err, internalErrs.ConstraintViolation)).To(BeTrue())
		})
	})

	Describe("UpsertDailyReport", func() {
		It("requires the report date", func() {
			report, err := service.UpsertDailyReport(context.Background(), "U1", customers.DailyReport{})
			Expect(report).To(BeNil())
			Expect(errors.Is(err, internalErrs.ConstraintViolation)).To(BeTrue())
		})

		It("passes the report through to the repository", func() {
			report := customersTest.RandomDailyReport()
			repo.EXPECT().
				UpsertDailyReport(gomock.Any(), "U1", gomock.Eq(report)).
				Return(&report, nil)

			upserted, err := service.UpsertDailyReport(context.Background(), "U1", report)
			Expect(err).ToNot(HaveOccurred())
			Expect(upserted).To(Equal(&report))
		})
	})

	Describe("ListDailyReports", func() {
		It("defaults the limit", func() {
			repo.EXPECT().
				ListDailyReports(gomock.Any(), "U1", customers.DefaultReportLimit).
				Return(nil, nil)

			_, err := service.ListDailyReports(context.Background(), "U1", 0)
			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects a limit over the maximum", func() {
			list, err := service.ListDailyReports(context.Background(), "U1", customers.MaxReportLimit+1)
			Expect(list).To(BeNil())
			Expect(errors.Is(err, internalErrs.BadRequest)).To(BeTrue())
		})
	})

	Describe("GetDailyReport", func() {
		It("maps a missing report to a not found error", func() {
			repo.EXPECT().
				GetDailyReport(gomock.Any(), "U1", "2024-06-01").
				Return(nil, customers.ErrReportNotFound)

			report, err := service.GetDailyReport(context.Background(), "U1", "2024-06-01")
			Expect(report).To(BeNil())
			Expect(errors.Is(err, internalErrs.NotFound)).To(BeTrue())
		})
	})

	Describe("LatestDailyReport", func() {
		It("maps an empty history to a not found error", func() {
			repo.EXPECT().
				LatestDailyReport(gomock.Any(), "U1").
				Return(nil, customers.ErrReportNotFound)

			report, err := service.LatestDailyReport(context.Background(), "U1")
			Expect(report).To(BeNil())
			Expect(errors.Is(err, internalErrs.NotFound)).To(BeTrue())
		})
	})
})
