package customers_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"

	"github.com/megacare-dev/mega-care-api/customers"
	customersTest "github.com/megacare-dev/mega-care-api/customers/test"
	"github.com/megacare-dev/mega-care-api/store"
	storeTest "github.com/megacare-dev/mega-care-api/store/test"
)

var _ = Describe("Customers Repository", func() {
	var repo customers.Repository
	var client *storeTest.MockClient
	var ctrl *gomock.Controller

	const userId = "U6f675bbd8d397a5a481acca94a4e16b3"
	var profileRef store.Ref

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		client = storeTest.NewMockClient(ctrl)
		profileRef = store.NewRef(store.CustomersCollection, userId)

		var err error
		repo, err = customers.NewRepository(client)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Create", func() {
		var customer customers.Customer

		BeforeEach(func() {
			customer = customersTest.RandomCustomer()
			customer.Id = userId
		})

		It("writes the profile and stamps the setup date", func() {
			customer.SetupDate = nil

			var written bson.M
			gomock.InOrder(
				client.EXPECT().
					Get(gomock.Any(), gomock.Eq(profileRef)).
					Return(nil, store.ErrNotFound),
				client.EXPECT().
					Set(gomock.Any(), gomock.Eq(profileRef), gomock.Any(), false).
					DoAndReturn(func(_ context.Context, _ store.Ref, fields bson.M, _ bool) error {
						written = fields
						return nil
					}),
				client.EXPECT().
					Get(gomock.Any(), gomock.Eq(profileRef)).
					DoAndReturn(func(_ context.Context, ref store.Ref) (*store.Document, error) {
						return &store.Document{Ref: ref, Fields: written}, nil
					}),
			)

			created, err := repo.Create(context.Background(), customer)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).To(Equal(userId))
			Expect(created.SetupDate).ToNot(BeNil())
			Expect(written["setupDate"]).ToNot(BeNil())
		})

		It("keeps an existing setup date", func() {
			var written bson.M
			gomock.InOrder(
				client.EXPECT().
					Get(gomock.Any(), gomock.Eq(profileRef)).
					Return(nil, store.ErrNotFound),
				client.EXPECT().
					Set(gomock.Any(), gomock.Eq(profileRef), gomock.Any(), false).
					DoAndReturn(func(_ context.Context, _ store.Ref, fields bson.M, _ bool) error {
						written = fields
						return nil
					}),
				client.EXPECT().
					Get(gomock.Any(), gomock.Eq(profileRef)).
					DoAndReturn(func(_ context.Context, ref store.Ref) (*store.Document, error) {
						return &store.Document{Ref: ref, Fields: written}, nil
					}),
			)

			customer.SetupDate = customer.BirthDate
			created, err := repo.Create(context.Background(), customer)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.SetupDate).To(gstruct.PointTo(Equal(*customer.SetupDate)))
		})

		It("reports a duplicate when the profile exists", func() {
			client.EXPECT().
				Get(gomock.Any(), gomock.Eq(profileRef)).
				Return(&store.Document{Ref: profileRef, Fields: bson.M{}}, nil)

			created, err := repo.Create(context.Background(), customer)
			Expect(created).To(BeNil())
			Expect(errors.Is(err, customers.ErrDuplicate)).To(BeTrue())
		})
	})

	Describe("FindByLineId", func() {
		It("queries the customers collection by line id", func() {
			filters := []store.Filter{{Field: "lineId", Value: "Uline-id"}}
			doc := store.Document{Ref: profileRef, Fields: bson.M{"lineId": "Uline-id", "firstName": "John"}}
			client.EXPECT().
				Query(gomock.Any(), nil, store.CustomersCollection, gomock.Eq(filters), nil, int64(1)).
				Return([]store.Document{doc}, nil)

			customer, err := repo.FindByLineId(context.Background(), "Uline-id")
			Expect(err).ToNot(HaveOccurred())
			Expect(customer.Id).To(Equal(userId))
			Expect(customer.FirstName).To(gstruct.PointTo(Equal("John")))
		})

		It("reports not found when no profile matches", func() {
			client.EXPECT().
				Query(gomock.Any(), nil, store.CustomersCollection, gomock.Any(), nil, int64(1)).
				Return(nil, nil)

			customer, err := repo.FindByLineId(context.Background(), "Uline-id")
			Expect(customer).To(BeNil())
			Expect(errors.Is(err, customers.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("AddDevice", func() {
		It("stamps the added date and returns the generated id", func() {
			device := customersTest.RandomDevice()
			device.Id = ""
			device.AddedDate = nil

			client.EXPECT().
				Add(gomock.Any(), gomock.Eq(profileRef), store.DevicesCollection, gomock.Any()).
				Return(profileRef.Child(store.DevicesCollection, "generated"), nil)

			added, err := repo.AddDevice(context.Background(), userId, device)
			Expect(err).ToNot(HaveOccurred())
			Expect(added.Id).To(Equal("generated"))
			Expect(added.AddedDate).ToNot(BeNil())
		})
	})

	Describe("UpsertDailyReport", func() {
		It("writes the report keyed by its date", func() {
			report := customersTest.RandomDailyReport()
			reportRef := profileRef.Child(store.DailyReportsCollection, report.Id)

			var written bson.M
			gomock.InOrder(
				client.EXPECT().
					Set(gomock.Any(), gomock.Eq(reportRef), gomock.Any(), false).
					DoAndReturn(func(_ context.Context, _ store.Ref, fields bson.M, _ bool) error {
						written = fields
						return nil
					}),
				client.EXPECT().
					Get(gomock.Any(), gomock.Eq(reportRef)).
					DoAndReturn(func(_ context.Context, ref store.Ref) (*store.Document, error) {
						return &store.Document{Ref: ref, Fields: written}, nil
					}),
			)

			upserted, err := repo.UpsertDailyReport(context.Background(), userId, report)
			Expect(err).ToNot(HaveOccurred())
			Expect(upserted.Id).To(Equal(report.Id))
			Expect(written["reportDate"]).To(Equal(report.Id))
		})
	})

	Describe("ListDailyReports", func() {
		It("orders by report date descending and limits the result", func() {
			orderBy := &store.Order{Field: "reportDate", Descending: true}
			client.EXPECT().
				Query(gomock.Any(), gomock.Eq(&profileRef), store.DailyReportsCollection, nil, gomock.Eq(orderBy), int64(7)).
				Return(nil, nil)

			reports, err := repo.ListDailyReports(context.Background(), userId, 7)
			Expect(err).ToNot(HaveOccurred())
			Expect(reports).To(BeEmpty())
		})
	})

	Describe("LatestDailyReport", func() {
		It("reports not found when there are no reports", func() {
			client.EXPECT().
				Query(gomock.Any(), gomock.Eq(&profileRef), store.DailyReportsCollection, nil, gomock.Any(), int64(1)).
				Return(nil, nil)

			report, err := repo.LatestDailyReport(context.Background(), userId)
			Expect(report).To(BeNil())
			Expect(errors.Is(err, customers.ErrReportNotFound)).To(BeTrue())
		})
	})
})
