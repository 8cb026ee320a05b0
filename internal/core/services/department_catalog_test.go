package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/SscSPs/employee_directory_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DepartmentCatalogTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockDepartmentRepository
}

func (suite *DepartmentCatalogTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockDepartmentRepository)
}

func (suite *DepartmentCatalogTestSuite) TestStatic_SentinelFirst() {
	catalog := services.NewDepartmentCatalog(services.CatalogSourceStatic, suite.mockRepo)

	entries := catalog.ListDepartments(suite.ctx)

	suite.Require().Len(entries, len(domain.StaticDepartments)+1)
	suite.Equal(domain.AllDepartments, entries[0])
	suite.Equal("Civil", entries[1].Key)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListDepartments")
}

func (suite *DepartmentCatalogTestSuite) TestStore_FetchFailureFallsBackToSentinel() {
	suite.mockRepo.On("ListDepartments", suite.ctx).Return(nil, apperrors.ErrStoreUnavailable).Twice()
	clock := &fixedClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	catalog := services.NewDepartmentCatalog(services.CatalogSourceStore, suite.mockRepo,
		services.WithCatalogClock(clock), services.WithCatalogRetryAfter(time.Minute))

	suite.Equal([]domain.DepartmentLabel{domain.AllDepartments}, catalog.ListDepartments(suite.ctx))
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "ListDepartments", 1)

	// The retry window has passed, so the next read asks the store again.
	clock.now = clock.now.Add(time.Minute)
	suite.Equal([]domain.DepartmentLabel{domain.AllDepartments}, catalog.ListDepartments(suite.ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepartmentCatalogTestSuite) TestStore_FailureIsNotRefetchedPerLookup() {
	suite.mockRepo.On("ListDepartments", suite.ctx).Return(nil, apperrors.ErrStoreUnavailable).Once()
	clock := &fixedClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	catalog := services.NewDepartmentCatalog(services.CatalogSourceStore, suite.mockRepo, services.WithCatalogClock(clock))

	for i := 0; i < 500; i++ {
		suite.Equal("Civil", catalog.ResolveLabel(suite.ctx, "Civil", domain.LanguageArabic))
		suite.Equal("مدني", catalog.CanonicalKey(suite.ctx, "مدني"))
	}

	suite.mockRepo.AssertNumberOfCalls(suite.T(), "ListDepartments", 1)
}

func (suite *DepartmentCatalogTestSuite) TestStore_InvalidateClearsFailure() {
	records := []domain.Department{{ID: "d1", EN: "Civil", AR: "مدني"}}
	suite.mockRepo.On("ListDepartments", suite.ctx).Return(nil, apperrors.ErrStoreUnavailable).Once()
	suite.mockRepo.On("ListDepartments", suite.ctx).Return(records, nil).Once()
	catalog := services.NewDepartmentCatalog(services.CatalogSourceStore, suite.mockRepo)

	suite.Len(catalog.ListDepartments(suite.ctx), 1)
	catalog.Invalidate()

	suite.Equal("مدني", catalog.ResolveLabel(suite.ctx, "Civil", domain.LanguageArabic))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepartmentCatalogTestSuite) TestStore_CachesUntilInvalidated() {
	records := []domain.Department{
		{ID: "d1", EN: "Civil", AR: "مدني"},
		{ID: "d2", EN: "  ", AR: "فارغ"},
		{ID: "d3", EN: "QA", AR: "جودة"},
	}
	suite.mockRepo.On("ListDepartments", suite.ctx).Return(records, nil).Twice()
	catalog := services.NewDepartmentCatalog(services.CatalogSourceStore, suite.mockRepo)

	first := catalog.ListDepartments(suite.ctx)
	second := catalog.ListDepartments(suite.ctx)
	catalog.Invalidate()
	third := catalog.ListDepartments(suite.ctx)

	suite.Equal([]domain.DepartmentLabel{
		domain.AllDepartments,
		{Key: "Civil", LabelEN: "Civil", LabelAR: "مدني"},
		{Key: "QA", LabelEN: "QA", LabelAR: "جودة"},
	}, first)
	suite.Equal(first, second)
	suite.Equal(first, third)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "ListDepartments", 2)
}

func (suite *DepartmentCatalogTestSuite) TestResolveLabel() {
	catalog := services.NewDepartmentCatalog(services.CatalogSourceStatic, nil)

	suite.Equal("مدني", catalog.ResolveLabel(suite.ctx, "Civil", domain.LanguageArabic))
	suite.Equal("Civil", catalog.ResolveLabel(suite.ctx, "Civil", domain.LanguageEnglish))
	suite.Equal("Unspecified", catalog.ResolveLabel(suite.ctx, "", domain.LanguageEnglish))
	suite.Equal("غير محدد", catalog.ResolveLabel(suite.ctx, "  ", domain.LanguageArabic))
	suite.Equal("Robotics", catalog.ResolveLabel(suite.ctx, "Robotics", domain.LanguageArabic))
	suite.Equal("جميع الأقسام", catalog.ResolveLabel(suite.ctx, domain.AllDepartmentsKey, domain.LanguageArabic))
	// Legacy records stored the Arabic label as the key.
	suite.Equal("Civil", catalog.ResolveLabel(suite.ctx, "مدني", domain.LanguageEnglish))
}

func (suite *DepartmentCatalogTestSuite) TestCanonicalKey() {
	catalog := services.NewDepartmentCatalog(services.CatalogSourceStatic, nil)

	suite.Equal("Civil", catalog.CanonicalKey(suite.ctx, "مدني"))
	suite.Equal("Technical Office", catalog.CanonicalKey(suite.ctx, "technical office"))
	suite.Equal("QC", catalog.CanonicalKey(suite.ctx, " QC "))
	suite.Equal("Robotics", catalog.CanonicalKey(suite.ctx, "Robotics"))
	suite.Equal("", catalog.CanonicalKey(suite.ctx, "   "))
}

func (suite *DepartmentCatalogTestSuite) TestSuggest() {
	catalog := services.NewDepartmentCatalog(services.CatalogSourceStatic, nil)

	suggestions := catalog.Suggest(suite.ctx, "mech")
	suite.Require().NotEmpty(suggestions)
	suite.Equal("Mechanical", suggestions[0].Key)

	arabic := catalog.Suggest(suite.ctx, "كهر")
	suite.Require().NotEmpty(arabic)
	suite.Equal("Electrical", arabic[0].Key)

	suite.Len(catalog.Suggest(suite.ctx, ""), len(domain.StaticDepartments))
	suite.Empty(catalog.Suggest(suite.ctx, "zzzz"))
}

func TestDepartmentCatalog(t *testing.T) {
	suite.Run(t, new(DepartmentCatalogTestSuite))
}

func TestParseCatalogSource(t *testing.T) {
	src, err := services.ParseCatalogSource("STORE")
	require.NoError(t, err)
	assert.Equal(t, services.CatalogSourceStore, src)

	src, err = services.ParseCatalogSource("")
	require.NoError(t, err)
	assert.Equal(t, services.CatalogSourceStatic, src)

	_, err = services.ParseCatalogSource("ldap")
	assert.Error(t, err)
}
