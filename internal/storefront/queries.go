package storefront

// GraphQL documents sent to the Storefront API. Limits are applied per
// collection by the upstream; any further slicing happens in the reshapers.

const searchQuery = `
query Search($query: String!, $limit: Int!) {
  products(first: $limit, query: $query) {
    edges {
      node {
        id
        title
        handle
        description
        onlineStoreUrl
        images(first: 1) {
          edges { node { url } }
        }
        priceRange {
          minVariantPrice { amount currencyCode }
        }
      }
    }
  }
  articles(first: $limit, query: $query) {
    edges {
      node {
        id
        title
        handle
        excerpt
        contentHtml
        onlineStoreUrl
      }
    }
  }
}`

const productByHandleQuery = `
query ProductByHandle($handle: String!) {
  productByHandle(handle: $handle) {
    id
    title
    handle
    description
    onlineStoreUrl
    images(first: 10) {
      edges { node { url } }
    }
    priceRange {
      minVariantPrice { amount currencyCode }
    }
  }
}`

const articleByHandleQuery = `
query ArticleByHandle($query: String!) {
  articles(first: 1, query: $query) {
    edges {
      node {
        id
        title
        handle
        excerpt
        content
        onlineStoreUrl
      }
    }
  }
}`

// faqPagesQuery caps at 10 pages; there is no pagination beyond that.
const faqPagesQuery = `
query FAQPages {
  pages(first: 10, query: "title:FAQ") {
    edges {
      node {
        title
        body
      }
    }
  }
}`
