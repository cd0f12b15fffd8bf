package graph

const assetFragment = `
fragment AssetFields on Asset {
  sys { id }
  url
  title
  description
  width
  height
}
`

const categoryFragment = `
fragment CategoryFields on Category {
  sys { id }
  name
  slug
  description
  icon {
    ...AssetFields
  }
}
` + assetFragment

// AssetFields reaches productFragment through categoryFragment.
const productFragment = `
fragment ProductFields on Product {
  sys { id }
  name
  slug
  description
  price
  currency
  imagesCollection {
    items {
      ...AssetFields
    }
  }
  category {
    ...CategoryFields
  }
  tags
  inStock
  sustainabilityScore
}
` + categoryFragment

const blogPostFragment = `
fragment BlogPostFields on BlogPost {
  sys { id publishedAt }
  title
  slug
  excerpt
  content { json }
  featuredImage {
    ...AssetFields
  }
  author
  publishedAt
  tags
}
` + assetFragment

const queryCategories = `
query GetCategories($preview: Boolean) {
  categoryCollection(order: name_ASC, preview: $preview) {
    items {
      ...CategoryFields
    }
  }
}
` + categoryFragment

const queryCategoryBySlug = `
query GetCategoryBySlug($slug: String!, $preview: Boolean) {
  categoryCollection(where: { slug: $slug }, limit: 1, preview: $preview) {
    items {
      ...CategoryFields
    }
  }
}
` + categoryFragment

const queryProducts = `
query GetProducts($limit: Int, $skip: Int, $preview: Boolean) {
  productCollection(limit: $limit, skip: $skip, order: name_ASC, preview: $preview) {
    total
    items {
      ...ProductFields
    }
  }
}
` + productFragment

const queryProductBySlug = `
query GetProductBySlug($slug: String!, $preview: Boolean) {
  productCollection(where: { slug: $slug }, limit: 1, preview: $preview) {
    items {
      ...ProductFields
    }
  }
}
` + productFragment

const queryProductsByCategory = `
query GetProductsByCategory($categoryId: String!, $limit: Int, $skip: Int, $preview: Boolean) {
  productCollection(
    where: { category: { sys: { id: $categoryId } } }
    limit: $limit
    skip: $skip
    order: name_ASC
    preview: $preview
  ) {
    total
    items {
      ...ProductFields
    }
  }
}
` + productFragment

const queryBlogPosts = `
query GetBlogPosts($limit: Int, $skip: Int, $preview: Boolean) {
  blogPostCollection(limit: $limit, skip: $skip, order: publishedAt_DESC, preview: $preview) {
    total
    items {
      ...BlogPostFields
    }
  }
}
` + blogPostFragment

const queryBlogPostBySlug = `
query GetBlogPostBySlug($slug: String!, $preview: Boolean) {
  blogPostCollection(where: { slug: $slug }, limit: 1, preview: $preview) {
    items {
      ...BlogPostFields
    }
  }
}
` + blogPostFragment
